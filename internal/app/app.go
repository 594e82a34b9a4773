package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/atomicstack/cascade-menu/internal/backend"
	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/logging"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/atomicstack/cascade-menu/internal/metrics"
	"github.com/atomicstack/cascade-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const metricsShutdownTimeout = 2 * time.Second

// Config describes user-provided application options.
type Config struct {
	MenuFile       string
	Width          int
	Height         int
	ShowFooter     bool
	HoverDelay     time.Duration
	TypeaheadReset time.Duration
	MetricsAddr    string
	OpenPath       string
	WatchInterval  time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	return RunContext(context.Background(), cfg)
}

// RunContext runs the menu until the program exits or ctx is cancelled. When
// a metrics address is configured the Prometheus endpoint is served alongside
// the program and shut down with it.
func RunContext(ctx context.Context, cfg Config) error {
	def, err := loadDefinition(cfg.MenuFile)
	if err != nil {
		return err
	}

	var listener net.Listener
	if cfg.MetricsAddr != "" {
		listener, err = net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("listen on metrics address: %w", err)
		}
	}

	var watcher *backend.Watcher
	if cfg.MenuFile != "" && cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(cfg.MenuFile, cfg.WatchInterval)
		defer watcher.Stop()
	}

	recorder := metrics.NewRecorder()
	model := ui.NewModel(ui.Options{
		Definition:     def,
		Width:          cfg.Width,
		Height:         cfg.Height,
		ShowFooter:     cfg.ShowFooter,
		HoverDelay:     cfg.HoverDelay,
		TypeaheadReset: cfg.TypeaheadReset,
		OpenPath:       cfg.OpenPath,
		Watcher:        watcher,
		Recorder:       recorder,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if listener != nil {
		srv := &http.Server{
			Handler:           recorder.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			events.App.MetricsListen(listener.Addr().String())
			if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancelShutdown()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logging.Error(fmt.Errorf("metrics shutdown: %w", err))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(gctx))
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	events.App.Stop(err)
	return err
}

func loadDefinition(path string) (catalog.Definition, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	def, err := catalog.Load(path)
	if err != nil {
		return catalog.Definition{}, fmt.Errorf("load menu file: %w", err)
	}
	return def, nil
}
