package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/cascade-menu/internal/backend"
	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/menu"
	"github.com/atomicstack/cascade-menu/internal/metrics"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelFallsBackToDefaultDefinition(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	if got := m.Root().TriggerElement().Label(); got != "My Menu" {
		t.Fatalf("expected default trigger label, got %q", got)
	}
	if m.Root().IsOpen() {
		t.Fatalf("expected root closed at startup")
	}
	if m.Definition().Depth() != catalog.Default().Depth() {
		t.Fatalf("expected default definition mounted")
	}
}

func TestOpenPathOpensChain(t *testing.T) {
	h := newTestHarness(t, Options{OpenPath: "Teste/Teste"})
	root := h.Model().Root()
	if !root.IsOpen() {
		t.Fatalf("expected root open")
	}
	mid := subMenu(t, root)
	leaf := subMenu(t, mid)
	if !mid.IsOpen() || !leaf.IsOpen() {
		t.Fatalf("expected both sub menus open")
	}
	if f := root.Focus(); f.Node != leaf || !f.InPopover {
		t.Fatalf("expected focus in the innermost popover, got %+v", f)
	}
	if len(root.Layers()) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(root.Layers()))
	}
}

func TestOpenPathResolvesPrefixes(t *testing.T) {
	h := newTestHarness(t, Options{OpenPath: "tes/sub item 2"})
	root := h.Model().Root()
	mid := subMenu(t, root)
	if !mid.IsOpen() {
		t.Fatalf("expected sub menu open")
	}
	if mid.ActiveIndex() != 1 {
		t.Fatalf("expected second item active, got %d", mid.ActiveIndex())
	}
}

func TestOpenPathReportsUnknownSegment(t *testing.T) {
	h := newTestHarness(t, Options{OpenPath: "Teste/zzzz"})
	m := h.Model()
	if !strings.Contains(m.Err(), "open") {
		t.Fatalf("expected open error, got %q", m.Err())
	}
	if m.Root().IsOpen() {
		t.Fatalf("expected nothing opened for an unresolved path")
	}
	if !strings.Contains(h.View(), m.Err()) {
		t.Fatalf("expected error in view, got:\n%s", h.View())
	}
}

type recordingPositioner struct {
	placements []menu.Placement
}

func (p *recordingPositioner) Position(ref menu.Rect, size menu.Size, placement menu.Placement, offset menu.Offset, bounds menu.Rect) menu.Rect {
	p.placements = append(p.placements, placement)
	return menu.Rect{X: 10 * len(p.placements), Y: 5, W: size.W, H: size.H}
}

func TestCustomPositionerPlacesPopovers(t *testing.T) {
	pos := &recordingPositioner{}
	h := newTestHarness(t, Options{OpenPath: "Teste", Positioner: pos})
	root := h.Model().Root()
	mid := subMenu(t, root)
	if len(pos.placements) != 2 {
		t.Fatalf("expected two popovers placed, got %d", len(pos.placements))
	}
	if pos.placements[0] != menu.BottomStart || pos.placements[1] != menu.RightStart {
		t.Fatalf("expected bottom-start then right-start, got %v", pos.placements)
	}
	if got := root.Floating().Rect(); got.X != 10 || got.Y != 5 {
		t.Fatalf("expected root popover at the positioned rect, got %+v", got)
	}
	if got := mid.Floating().Rect(); got.X != 20 {
		t.Fatalf("expected nested popover at the positioned rect, got %+v", got)
	}
	if got := root.List().Entry(0).Rect(); got.X != 11 || got.Y != 6 {
		t.Fatalf("expected first entry inside the positioned popover, got %+v", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h := newTestHarness(t, Options{Width: 50})
	m := h.Model()
	m.fixedHeight = false
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 50 {
		t.Fatalf("expected fixed width 50, got %d", m.width)
	}
	if m.height != 40 {
		t.Fatalf("expected height 40, got %d", m.height)
	}
}

func TestReloadRemountsRoot(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("down")
	old := m.Root()
	if !old.IsOpen() {
		t.Fatalf("expected root open before reload")
	}

	def := catalog.Definition{Title: "Fresh", Items: []catalog.Node{{Label: "Only"}}}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDefinition, Path: "/tmp/menus/menu.yaml", Data: def}})

	if old.Mounted() {
		t.Fatalf("expected old root unmounted")
	}
	if m.Root() == old {
		t.Fatalf("expected a new root")
	}
	if got := m.Root().TriggerElement().Label(); got != "Fresh" {
		t.Fatalf("expected reloaded trigger label, got %q", got)
	}
	if m.Root().IsOpen() {
		t.Fatalf("expected reloaded root closed")
	}
	if m.Status() != "Reloaded menu.yaml" {
		t.Fatalf("expected reload status, got %q", m.Status())
	}
}

func TestReloadIgnoresIdenticalDefinition(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	root := m.Root()
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDefinition, Data: catalog.Default()}})
	if m.Root() != root {
		t.Fatalf("expected identical definition to keep the mounted root")
	}
}

func TestReloadErrorKeepsMenu(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	root := m.Root()
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDefinition, Err: errors.New("boom")}})
	if m.Root() != root || !root.Mounted() {
		t.Fatalf("expected failed reload to keep the root")
	}
	if !strings.Contains(m.Err(), "boom") {
		t.Fatalf("expected reload error, got %q", m.Err())
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	m.backend = &backend.Watcher{}
	h.Send(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected watcher released")
	}
}

func TestCustomActionReceivesSelection(t *testing.T) {
	var got []catalog.Selection
	action := func(sel catalog.Selection) tea.Cmd {
		got = append(got, sel)
		return nil
	}
	h := newTestHarness(t, Options{Action: action})
	h.Key("down")
	h.Key("enter")
	if len(got) != 1 || got[0].Label() != "Sub item 1" {
		t.Fatalf("expected one selection of Sub item 1, got %+v", got)
	}
	if h.Model().Status() != "" {
		t.Fatalf("expected custom action to bypass the status line, got %q", h.Model().Status())
	}
}

func TestSelectionMessageOverridesStatus(t *testing.T) {
	def := catalog.Definition{Items: []catalog.Node{{Label: "Deploy", Message: "Deploying…"}}}
	h := newTestHarness(t, Options{Definition: def})
	h.Key("down")
	h.Key("enter")
	if h.Model().Status() != "Deploying…" {
		t.Fatalf("expected node message as status, got %q", h.Model().Status())
	}
}

func TestRecorderFollowsRemount(t *testing.T) {
	rec := metrics.NewRecorder()
	h := newTestHarness(t, Options{Recorder: rec})
	h.Key("down")
	h.Key("enter")
	def := catalog.Definition{Items: []catalog.Node{{Label: "Only"}}}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindDefinition, Data: def}})
	h.Key("down")

	if got := metricValue(t, rec, "cascade_menu_menu_opened_total"); got != 2 {
		t.Fatalf("expected 2 opens across both roots, got %v", got)
	}
	if got := metricValue(t, rec, "cascade_menu_menu_item_activated_total"); got != 1 {
		t.Fatalf("expected 1 activation, got %v", got)
	}
}

func metricValue(t *testing.T, rec *metrics.Recorder, name string) float64 {
	t.Helper()
	families, err := rec.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
