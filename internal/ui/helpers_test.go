package ui

import (
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/atomicstack/cascade-menu/internal/logging"
	"github.com/atomicstack/cascade-menu/internal/menu"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestHarness builds a model on a manual clock with a fixed 80x24 screen
// and deterministic node ids.
func newTestHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = menu.NewClock(time.Unix(0, 0))
	}
	opts.ManualClock = true
	if opts.Width == 0 {
		opts.Width = 80
	}
	if opts.Height == 0 {
		opts.Height = 24
	}
	if opts.NewID == nil {
		next := 0
		opts.NewID = func() menu.NodeID {
			next++
			return menu.NodeID(fmt.Sprintf("node-%d", next))
		}
	}
	return NewHarness(NewModel(opts))
}

// subMenu returns the first sub menu declared in node's open popover.
func subMenu(t *testing.T, node *menu.Menu) *menu.Menu {
	t.Helper()
	for _, e := range node.List().Entries() {
		if st, ok := e.(*menu.SubTrigger); ok {
			return st.Menu()
		}
	}
	t.Fatalf("expected a sub menu in %s", node.ID())
	return nil
}

func clickTrigger(h *Harness) {
	r := h.Model().Root().TriggerElement().Rect()
	h.Click(r.X+1, r.Y)
}
