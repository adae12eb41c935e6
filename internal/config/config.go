package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string
	WasmDir         string        `mapstructure:"wasm_dir"` // empty disables the client bundle
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Language string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix
// SIGNSPEECH_. path names an explicit config file; when empty,
// SIGNSPEECH_CONFIG is consulted and then ~/.config/signspeech/config.toml.
// Only an explicitly named file is required to exist.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.wasm_dir", "")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("site.language", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SIGNSPEECH_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "signspeech"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGNSPEECH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return c, nil
}
