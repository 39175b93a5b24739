package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/tomtext-pager/internal/app"
	"github.com/atomicstack/tomtext-pager/internal/theme"
)

// ErrMissingPath is returned when no document path was given.
var ErrMissingPath = errors.New("missing document path")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig  = "TOMTEXT_PAGER_CONFIG"
	envWidth   = "TOMTEXT_PAGER_WIDTH"
	envHeight  = "TOMTEXT_PAGER_HEIGHT"
	envFooter  = "TOMTEXT_PAGER_FOOTER"
	envWrap    = "TOMTEXT_PAGER_WRAP"
	envVerbose = "TOMTEXT_PAGER_VERBOSE"
	envTrace   = "TOMTEXT_PAGER_TRACE"
	envLogFile = "TOMTEXT_PAGER_LOG_FILE"
)

// Options holds the command-line flags. Bind registers them on a flag set.
type Options struct {
	fs         *pflag.FlagSet
	configPath string
	width      int
	height     int
	footer     bool
	noWrap     bool
	trace      bool
	verbose    bool
	logFile    string
}

// Bind registers the pager's flags on fs.
func Bind(fs *pflag.FlagSet) *Options {
	o := &Options{fs: fs}
	fs.StringVar(&o.configPath, "config", "", "path to a TOML config file (default: $XDG_CONFIG_HOME/tomtext-pager/config.toml)")
	fs.IntVar(&o.width, "width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.IntVar(&o.height, "height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.BoolVar(&o.footer, "footer", false, "enable footer hint row (disabled by default)")
	fs.BoolVar(&o.noWrap, "no-wrap", false, "cut long lines instead of wrapping them")
	fs.BoolVar(&o.trace, "trace", false, "enable verbose JSON trace logging")
	fs.BoolVar(&o.verbose, "verbose", false, "show status messages for tab changes")
	fs.StringVar(&o.logFile, "log-file", "", "path to the log file")
	return o
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tomtext-pager", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	opts := Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := opts.Resolve(fs.Args(), environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// Resolve layers flags over environment over the config file over defaults.
// positional holds the arguments left after flag parsing.
func (o *Options) Resolve(positional []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := o.stringValue("config", o.configPath, env, envConfig, "")
	file, usedPath, err := loadFile(configPath)
	if err != nil {
		return Config{}, err
	}

	palette := file.Colors.Merge(theme.DefaultPalette())
	width := o.intValue("width", o.width, env, envWidth, derefInt(file.Display.Width, 0))
	height := o.intValue("height", o.height, env, envHeight, derefInt(file.Display.Height, 0))
	footer := o.boolValue("footer", o.footer, env, envFooter, derefBool(file.Display.Footer, false))
	wrap := derefBool(file.Display.Wrap, true)
	if v, ok := envBool(env, envWrap); ok {
		wrap = v
	}
	if o.changed("no-wrap") {
		wrap = !o.noWrap
	}
	trace := o.boolValue("trace", o.trace, env, envTrace, derefBool(file.Log.Trace, false))
	verbose := o.boolValue("verbose", o.verbose, env, envVerbose, false)
	logFile := o.stringValue("log-file", o.logFile, env, envLogFile, file.Log.File)

	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}

	var docPath string
	if len(positional) > 0 {
		docPath = positional[0]
	}

	cfg := Config{
		App: app.Config{
			DocumentPath: docPath,
			Width:        width,
			Height:       height,
			ShowFooter:   footer,
			Verbose:      verbose,
			Wrap:         wrap,
			Palette:      palette,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		File: usedPath,
		Flags: map[string]string{
			"config":  usedPath,
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"footer":  strconv.FormatBool(footer),
			"wrap":    strconv.FormatBool(wrap),
			"trace":   strconv.FormatBool(trace),
			"verbose": strconv.FormatBool(verbose),
			"logFile": logFile,
		},
		Args: append([]string(nil), positional...),
	}
	if len(positional) > 1 {
		return cfg, fmt.Errorf("expected one document path, got %d arguments", len(positional))
	}
	return cfg, nil
}

func (o *Options) changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}

func (o *Options) stringValue(name, flagValue string, env map[string]string, key, fallback string) string {
	if o.changed(name) {
		return flagValue
	}
	return envOrDefault(env, key, fallback)
}

func (o *Options) intValue(name string, flagValue int, env map[string]string, key string, fallback int) int {
	if o.changed(name) {
		return flagValue
	}
	return envOrInt(env, key, fallback)
}

func (o *Options) boolValue(name string, flagValue bool, env map[string]string, key string, fallback bool) bool {
	if o.changed(name) {
		return flagValue
	}
	return envOrBool(env, key, fallback)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(env map[string]string, key string) (bool, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return parsed, true
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	if v, ok := envBool(env, key); ok {
		return v
	}
	return fallback
}

func derefInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func derefBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DocumentPath) == "" {
		return ErrMissingPath
	}
	return nil
}
