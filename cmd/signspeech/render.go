package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcrobe/signspeech/internal/app"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/internal/server"
	"github.com/vcrobe/signspeech/vdom"
)

// parseNow reads a clock override. Empty means the current time.
func parseNow(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: use RFC 3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		now      string
		lang     string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:     "render [path]",
		Short:   "Print the page rendered for a path",
		GroupID: "site",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			clock, err := parseNow(now)
			if err != nil {
				return err
			}
			if lang == "" {
				lang = opts.cfg.Site.Language
			}

			bundle, err := locale.NewBundle()
			if err != nil {
				return err
			}
			catalog := locale.New(bundle, lang)

			view, err := app.Render(path, clock, catalog)
			if err != nil {
				return err
			}
			opts.logger.Debug("rendered", "path", path, "view", view.Kind.String())

			out := cmd.OutOrStdout()
			if fragment {
				if err := vdom.RenderHTML(out, view.Tree); err != nil {
					return err
				}
			} else if err := server.Document(server.DocumentProps{View: view, Catalog: catalog}).Render(out); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "render as of this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&lang, "lang", "", "language preference (overrides site.language)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "print only the view tree, without the HTML document")
	return cmd
}
