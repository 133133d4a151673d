// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration. Every field is settable
// through a BROWSER_-prefixed environment variable.
type Config struct {
	// HomeURL is where new tabs and the home button navigate.
	HomeURL string `envconfig:"HOME_URL" default:"http://example.org/"`

	// Bookmarks is the path of the bookmarks JSON file.
	Bookmarks string `envconfig:"BOOKMARKS" default:"bookmarks.json"`

	// WindowWidth and WindowHeight size the browser window.
	WindowWidth  int `envconfig:"WINDOW_WIDTH" default:"1024"`
	WindowHeight int `envconfig:"WINDOW_HEIGHT" default:"768"`

	// Font names the devdraw font, empty for the default.
	Font string `envconfig:"FONT"`

	// WinFSAddr, when set, serves the window control filesystem on
	// this TCP address.
	WinFSAddr string `envconfig:"WINFS_ADDR"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogDev switches to the human-readable development encoder.
	LogDev bool `envconfig:"LOG_DEV" default:"false"`
}

// Load reads the configuration from BROWSER_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("browser", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("load config: window size %dx%d out of range",
			cfg.WindowWidth, cfg.WindowHeight)
	}
	return &cfg, nil
}
