package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tomtext-pager/internal/app"
	"github.com/atomicstack/tomtext-pager/internal/config"
	"github.com/atomicstack/tomtext-pager/internal/logging"
	"github.com/atomicstack/tomtext-pager/internal/theme"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DocumentPath: "index.txt",
			Width:        80,
			Height:       24,
			ShowFooter:   true,
			Verbose:      true,
			Wrap:         true,
			Palette:      theme.DefaultPalette(),
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--footer", "index.txt"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["document"] != "index.txt" {
		t.Fatalf("expected document path, got %v", payload["document"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestRootCommandRequiresDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	var cfgErr configError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !errors.Is(err, config.ErrMissingPath) {
		t.Fatalf("expected missing path error, got %v", err)
	}
}

func TestConfigSampleCommand(t *testing.T) {
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetArgs([]string{"config", "sample"})
	cmd.SetOut(out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "[display]") {
		t.Fatalf("expected display table in sample:\n%s", out.String())
	}
}

func TestKeysCommandListsBindings(t *testing.T) {
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetArgs([]string{"keys"})
	cmd.SetOut(out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"o/up  up", "ctrl+c  quit", "v  close tab"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}

func TestTraceStartupRespectsTraceToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pager.log")
	logging.Configure(path)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})
	cfg := config.Config{App: app.Config{DocumentPath: "index.txt"}}

	logging.SetTraceEnabled(false)
	traceStartup(cfg)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no trace output while disabled, got %v", err)
	}

	logging.SetTraceEnabled(true)
	traceStartup(cfg)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), `"app.start"`) {
		t.Fatalf("expected app.start entry, got %s", data)
	}
	if !strings.Contains(string(data), `"logPath":"`+path+`"`) {
		t.Fatalf("expected resolved log path in payload, got %s", data)
	}
}
