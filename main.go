// Package main implements tomtext-pager, a terminal viewer for documents made
// of headings, links and plain text. Followed links open in new tabs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/tomtext-pager/internal/app"
	"github.com/atomicstack/tomtext-pager/internal/config"
	"github.com/atomicstack/tomtext-pager/internal/format/table"
	"github.com/atomicstack/tomtext-pager/internal/logging"
	"github.com/atomicstack/tomtext-pager/internal/logging/events"
	"github.com/atomicstack/tomtext-pager/internal/ui/keymap"
)

var version = "dev"

// configError marks failures that should exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tomtext-pager <document>",
		Short: "Page through linked text documents",
		Long: `Page through documents made of headings (.h), links (.l) and plain text.

Keys: o/i move, enter selects, e/n cycle tabs, p opens a path,
v closes the current tab, ctrl+c quits.`,
		Example: `  # Open a document
  tomtext-pager index.txt

  # Cut long lines instead of wrapping, with the key hint footer
  tomtext-pager --no-wrap --footer index.txt`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}
	opts := config.Bind(root.Flags())
	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.Resolve(args, os.Environ())
		if err == nil {
			err = config.Validate(cfg)
		}
		if err != nil {
			return configError{fmt.Errorf("configuration error: %w", err)}
		}
		cfg.Args = os.Args[1:]
		return run(cfg)
	}
	root.AddCommand(newConfigCmd(), newKeysCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the default configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("could not determine config path: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "sample",
			Short: "Print a configuration file with the default settings",
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := config.Sample()
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)
	return configCmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Aliases: []string{"keybinds"},
		Short:   "List key bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := table.Format(keymap.Default().Rows(), []table.Alignment{table.AlignRight})
			for _, row := range rows {
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}
			return nil
		},
	}
}

func run(cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	traceStartup(cfg)

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"document": cfg.App.DocumentPath,
		"logPath":  logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
