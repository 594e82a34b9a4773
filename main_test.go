package main

import (
	"testing"
	"time"

	"github.com/atomicstack/cascade-menu/internal/app"
	"github.com/atomicstack/cascade-menu/internal/config"
)

func TestProbeTerminalWithoutTTY(t *testing.T) {
	info := probeTerminal()
	if info.Source == "" && info.Mouse {
		t.Fatalf("expected mouse support only with a terminal, got %+v", info)
	}
	if info.Source != "" && (info.Width <= 0 || info.Height <= 0) {
		t.Fatalf("expected a size for %s, got %dx%d", info.Source, info.Width, info.Height)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuFile:       "menu.yaml",
			Width:          80,
			Height:         24,
			ShowFooter:     true,
			HoverDelay:     75 * time.Millisecond,
			TypeaheadReset: 750 * time.Millisecond,
			OpenPath:       "Teste/Teste",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menuFile":   "menu.yaml",
			"width":      "80",
			"height":     "24",
			"footer":     "true",
			"hoverDelay": "75ms",
			"open":       "Teste/Teste",
		},
		Args: []string{"--menu-file", "menu.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menuFile"] != "menu.yaml" {
		t.Fatalf("expected menu file flag %q, got %v", "menu.yaml", flagsValue["menuFile"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["hoverDelay"] != "75ms" {
		t.Fatalf("expected hover delay 75ms, got %v", flagsValue["hoverDelay"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal info in payload")
	}
	if payload["menu"] != "menu.yaml" {
		t.Fatalf("expected menu source menu.yaml, got %v", payload["menu"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
