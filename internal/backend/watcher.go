package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/cascade-menu/internal/catalog"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindDefinition Kind = iota
)

// Event conveys a reloaded definition or the error that prevented it.
type Event struct {
	Kind Kind
	Path string
	Data interface{}
	Err  error
}

// Watcher polls a menu definition file at a fixed interval and publishes an
// event whenever its contents change.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

type fingerprint struct {
	modTime time.Time
	size    int64
}

// NewWatcher starts polling path every interval. The file's state at start
// is the baseline; only later changes are reported.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startDefinitionPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startDefinitionPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	last, _ := stat(w.path)
	w.wg.Add(1)
	go w.poll(KindDefinition, func(ctx context.Context) (interface{}, bool, error) {
		current, err := stat(w.path)
		if err != nil {
			if current == last {
				return nil, false, nil
			}
			last = current
			return nil, true, err
		}
		if current == last {
			return nil, false, nil
		}
		if !throttle.wait(ctx) {
			return nil, false, nil
		}
		last = current
		def, err := catalog.Load(w.path)
		return def, true, err
	})
}

func stat(path string) (fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}, err
	}
	return fingerprint{modTime: info.ModTime(), size: info.Size()}, nil
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			data, changed, err := fetch(w.ctx)
			if !changed {
				continue
			}
			evt := Event{Kind: kind, Path: w.path, Data: data, Err: err}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}
