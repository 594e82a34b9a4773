package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/cascade-menu/internal/app"
	"github.com/atomicstack/cascade-menu/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile       = "CASCADE_MENU_FILE"
	envWidth          = "CASCADE_MENU_WIDTH"
	envHeight         = "CASCADE_MENU_HEIGHT"
	envShowFooter     = "CASCADE_MENU_FOOTER"
	envTrace          = "CASCADE_MENU_TRACE"
	envLogFile        = "CASCADE_MENU_LOG_FILE"
	envHoverDelay     = "CASCADE_MENU_HOVER_DELAY"
	envTypeaheadReset = "CASCADE_MENU_TYPEAHEAD_RESET"
	envMetricsAddr    = "CASCADE_MENU_METRICS_ADDR"
	envOpenPath       = "CASCADE_MENU_OPEN"
	envWatchInterval  = "CASCADE_MENU_WATCH_INTERVAL"
)

const defaultWatchInterval = 1500 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("cascade-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to a YAML menu definition (empty uses the built-in demo)")
	width := fs.Int("width", envOr(env, envWidth, 0, strconv.Atoi), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOr(env, envHeight, 0, strconv.Atoi), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOr(env, envShowFooter, false, strconv.ParseBool), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOr(env, envTrace, false, strconv.ParseBool), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	hoverDelay := fs.Duration("hover-delay", envOr(env, envHoverDelay, menu.DefaultHoverDelay, time.ParseDuration), "pointer rest time before a sub menu opens")
	typeaheadReset := fs.Duration("typeahead-reset", envOr(env, envTypeaheadReset, menu.DefaultTypeaheadReset, time.ParseDuration), "idle time before the typeahead buffer clears")
	metricsAddr := fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "serve prometheus metrics on this address (empty disables)")
	openPath := fs.String("open", envOrDefault(env, envOpenPath, ""), "slash separated labels to open at startup")
	watchInterval := fs.Duration("watch-interval", envOr(env, envWatchInterval, defaultWatchInterval, time.ParseDuration), "poll interval for menu file changes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			MenuFile:       *menuFile,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			HoverDelay:     *hoverDelay,
			TypeaheadReset: *typeaheadReset,
			MetricsAddr:    *metricsAddr,
			OpenPath:       *openPath,
			WatchInterval:  *watchInterval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menuFile":       *menuFile,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"hoverDelay":     hoverDelay.String(),
			"typeaheadReset": typeaheadReset.String(),
			"metricsAddr":    *metricsAddr,
			"open":           *openPath,
			"watchInterval":  watchInterval.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

// envOr parses the variable named key, keeping fallback when it is unset,
// blank or malformed.
func envOr[T any](env map[string]string, key string, fallback T, parse func(string) (T, error)) T {
	v := strings.TrimSpace(env[key])
	if v == "" {
		return fallback
	}
	parsed, err := parse(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects timings the menu cannot run with.
func Validate(cfg Config) error {
	if cfg.App.HoverDelay < 0 {
		return fmt.Errorf("hover-delay must be >= 0 (got %s)", cfg.App.HoverDelay)
	}
	if cfg.App.TypeaheadReset <= 0 {
		return fmt.Errorf("typeahead-reset must be > 0 (got %s)", cfg.App.TypeaheadReset)
	}
	if cfg.App.MenuFile != "" && cfg.App.WatchInterval <= 0 {
		return fmt.Errorf("watch-interval must be > 0 (got %s)", cfg.App.WatchInterval)
	}
	return nil
}
