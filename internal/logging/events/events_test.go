package events

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/atomicstack/cascade-menu/internal/logging"
)

type entry struct {
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

func capture(t *testing.T, fn func()) []entry {
	t.Helper()
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	logging.SetTraceEnabled(true)
	defer func() {
		logging.SetTraceEnabled(false)
		logging.SetOutput(nil)
	}()
	fn()
	var entries []entry
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var e entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestTracersWriteNamedEvents(t *testing.T) {
	entries := capture(t, func() {
		Menu.Open("node-2", "node-1", "hover")
		UI.Key("down", true)
		UI.Reload("menu.yaml", errors.New("bad yaml"))
		Command.Result("a/b", "b", "ui.selectedMsg")
		App.Stop(nil)
	})
	want := []string{"menu.open", "ui.key", "ui.reload", "command.result", "app.stop"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Event != name {
			t.Fatalf("expected event %q at %d, got %q", name, i, entries[i].Event)
		}
	}
	if entries[0].Payload["parent"] != "node-1" {
		t.Fatalf("expected parent id in payload, got %v", entries[0].Payload)
	}
	if entries[2].Payload["error"] != "bad yaml" {
		t.Fatalf("expected reload error in payload, got %v", entries[2].Payload)
	}
	if _, ok := entries[4].Payload["error"]; ok {
		t.Fatalf("expected no error key for a clean stop")
	}
}
