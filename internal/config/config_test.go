package config

import (
	"testing"
	"time"

	"github.com/atomicstack/cascade-menu/internal/menu"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.HoverDelay != menu.DefaultHoverDelay {
		t.Fatalf("expected default hover delay, got %s", cfg.App.HoverDelay)
	}
	if cfg.App.TypeaheadReset != menu.DefaultTypeaheadReset {
		t.Fatalf("expected default typeahead reset, got %s", cfg.App.TypeaheadReset)
	}
	if cfg.App.WatchInterval != defaultWatchInterval {
		t.Fatalf("expected default watch interval, got %s", cfg.App.WatchInterval)
	}
	if cfg.App.MenuFile != "" || cfg.App.ShowFooter {
		t.Fatalf("expected empty menu file and hidden footer, got %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"CASCADE_MENU_FILE=/tmp/menu.yaml",
		"CASCADE_MENU_WIDTH=80",
		"CASCADE_MENU_FOOTER=true",
		"CASCADE_MENU_HOVER_DELAY=120ms",
		"CASCADE_MENU_OPEN=Teste/Teste",
		"CASCADE_MENU_TRACE=not-a-bool",
		"malformed",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MenuFile != "/tmp/menu.yaml" {
		t.Fatalf("expected menu file from env, got %q", cfg.App.MenuFile)
	}
	if cfg.App.Width != 80 || !cfg.App.ShowFooter {
		t.Fatalf("expected width 80 with footer, got %+v", cfg.App)
	}
	if cfg.App.HoverDelay != 120*time.Millisecond {
		t.Fatalf("expected 120ms hover delay, got %s", cfg.App.HoverDelay)
	}
	if cfg.App.OpenPath != "Teste/Teste" {
		t.Fatalf("expected open path from env, got %q", cfg.App.OpenPath)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected invalid bool to fall back to false")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"CASCADE_MENU_WIDTH=80", "CASCADE_MENU_METRICS_ADDR=:9000"}
	cfg, err := LoadArgs([]string{"-width", "40", "-metrics-addr", ":9100", "-typeahead-reset", "1s"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 40 {
		t.Fatalf("expected flag width 40, got %d", cfg.App.Width)
	}
	if cfg.App.MetricsAddr != ":9100" {
		t.Fatalf("expected flag metrics addr, got %q", cfg.App.MetricsAddr)
	}
	if cfg.Flags["typeaheadReset"] != "1s" {
		t.Fatalf("expected flag map to record typeahead reset, got %q", cfg.Flags["typeaheadReset"])
	}
	if len(cfg.Args) != 6 {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{name: "defaults", ok: true},
		{name: "negative hover", args: []string{"-hover-delay", "-1ms"}},
		{name: "zero reset", args: []string{"-typeahead-reset", "0s"}},
		{name: "zero watch without file", args: []string{"-watch-interval", "0s"}, ok: true},
		{name: "zero watch with file", args: []string{"-menu-file", "m.yaml", "-watch-interval", "0s"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(tc.args, nil)
			if err != nil {
				t.Fatalf("unexpected load error: %v", err)
			}
			err = Validate(cfg)
			if tc.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{"CASCADE_MENU_HOVER_DELAY=soon", "CASCADE_MENU_WIDTH=wide", "CASCADE_MENU_FOOTER= "}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.HoverDelay != menu.DefaultHoverDelay {
		t.Fatalf("expected default hover delay, got %s", cfg.App.HoverDelay)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected defaults for malformed values, got width=%d footer=%v", cfg.App.Width, cfg.App.ShowFooter)
	}
}
