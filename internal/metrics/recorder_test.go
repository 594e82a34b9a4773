package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/cascade-menu/internal/menu"
)

func buildMenu() *menu.Menu {
	root := menu.NewRoot(menu.Options{Scheduler: menu.NewClock(time.Unix(0, 0))})
	root.Trigger("menu")
	root.Popover(func(p *menu.Popover) {
		p.Item("one")
		p.Sub(func(m *menu.Menu) {
			m.SubTrigger("more")
			m.Popover(func(p *menu.Popover) { p.Item("two") })
		})
	})
	return root
}

func counterValue(t *testing.T, r *Recorder, name, depth string) float64 {
	t.Helper()
	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			match := depth == ""
			for _, label := range m.GetLabel() {
				if label.GetName() == "depth" && label.GetValue() == depth {
					match = true
				}
			}
			if match {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecorderCountsOpensByDepth(t *testing.T) {
	rec := NewRecorder()
	root := buildMenu()
	stop := rec.Observe(root)
	defer stop()

	root.Open()
	sub := root.Floating().Children()[0]
	sub.Open()
	sub.Close()
	sub.Open()

	if got := counterValue(t, rec, "cascade_menu_menu_opened_total", "0"); got != 1 {
		t.Fatalf("expected 1 root open, got %v", got)
	}
	if got := counterValue(t, rec, "cascade_menu_menu_opened_total", "1"); got != 2 {
		t.Fatalf("expected 2 nested opens, got %v", got)
	}
}

func TestRecorderCountsActivations(t *testing.T) {
	rec := NewRecorder()
	root := buildMenu()
	rec.Observe(root)
	root.Open()
	root.List().Entry(0).(*menu.Item).Activate()
	if got := counterValue(t, rec, "cascade_menu_menu_item_activated_total", ""); got != 1 {
		t.Fatalf("expected 1 activation, got %v", got)
	}
}

func TestHandlerServesText(t *testing.T) {
	rec := NewRecorder()
	root := buildMenu()
	rec.Observe(root)
	root.Open()

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `cascade_menu_menu_opened_total{depth="0"} 1`) {
		t.Fatalf("expected opened counter in output, got:\n%s", body)
	}
}
