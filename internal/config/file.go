package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/atomicstack/tomtext-pager/internal/theme"
)

const configRelPath = "tomtext-pager/config.toml"

// searchConfigFile is swapped out in tests so the user's config is not read.
var searchConfigFile = xdg.SearchConfigFile

type fileConfig struct {
	Display displayConfig `toml:"display"`
	Colors  theme.Palette `toml:"colors"`
	Log     logConfig     `toml:"log"`
}

type displayConfig struct {
	Wrap   *bool `toml:"wrap,omitempty"`
	Footer *bool `toml:"footer,omitempty"`
	Width  *int  `toml:"width,omitempty"`
	Height *int  `toml:"height,omitempty"`
}

type logConfig struct {
	File  string `toml:"file,omitempty"`
	Trace *bool  `toml:"trace,omitempty"`
}

// loadFile reads the config file at path, or the default location when path
// is empty. A missing default file is not an error; a missing explicit one is.
func loadFile(path string) (fileConfig, string, error) {
	var cfg fileConfig
	if path == "" {
		found, err := searchConfigFile(configRelPath)
		if err != nil {
			return cfg, "", nil
		}
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, "", fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return cfg, "", fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

// DefaultPath returns where the config file is looked up by default, creating
// the parent directory when needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(configRelPath)
}

// Sample returns a config file populated with the defaults.
func Sample() ([]byte, error) {
	wrap, footer := true, false
	cfg := fileConfig{
		Display: displayConfig{Wrap: &wrap, Footer: &footer},
		Colors:  theme.DefaultPalette(),
	}
	return toml.Marshal(cfg)
}
