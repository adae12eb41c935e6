package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/signspeech/internal/config"
	"github.com/vcrobe/signspeech/internal/logging"
)

// rootOptions carries the persistent flags and what PersistentPreRunE
// derives from them.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// load reads configuration, applies flag overrides and installs the logger
// as the process default.
func (o *rootOptions) load(w io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	logger, _, err := logging.New(cfg.Log.Level, cfg.Log.Format, w)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(logger)

	o.cfg = cfg
	o.logger = logger
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "signspeech <command>",
		Short:        "Server and renderer for the AI Sign ↔ Speech site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $SIGNSPEECH_CONFIG or ~/.config/signspeech/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text or json (overrides config)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "site", Title: "Site:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	// Site
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newRoutesCmd(opts))

	// System
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
