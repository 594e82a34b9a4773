// Package metrics counts menu activity in Prometheus counters fed by the
// menu tree's broadcasts.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/atomicstack/cascade-menu/internal/menu"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cascade_menu"

// Recorder owns a registry with the menu counters.
type Recorder struct {
	registry  *prometheus.Registry
	opened    IncrementalCounter
	activated IncrementalCounter
}

// NewRecorder registers the menu counters on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	return &Recorder{
		registry:  reg,
		opened:    NewCounterWithRegistry(reg, "menu_opened_total", "Menus opened, by nesting depth.", "depth"),
		activated: NewCounterWithRegistry(reg, "menu_item_activated_total", "Menu items activated."),
	}
}

// Observe subscribes to root's tree. The returned function stops observing.
func (r *Recorder) Observe(root *menu.Menu) func() {
	tree := root.Tree()
	stopOpened := tree.Subscribe(menu.EventMenuOpened, func(ev menu.Event) {
		depth := 0
		if node, ok := root.Node(ev.Opened.NodeID); ok {
			depth = node.Depth()
		}
		r.opened.Increment(strconv.Itoa(depth))
	})
	stopActivated := tree.Subscribe(menu.EventItemActivated, func(menu.Event) {
		r.activated.Increment()
	})
	return func() {
		stopOpened()
		stopActivated()
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return HandlerForRegistry(r.registry)
}
