package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/cascade-menu/internal/backend"
	"github.com/atomicstack/cascade-menu/internal/catalog"
)

type memoryStore struct {
	def  catalog.Definition
	sets int
}

func (m *memoryStore) Definition() catalog.Definition { return m.def }

func (m *memoryStore) SetDefinition(def catalog.Definition) {
	m.def = def
	m.sets++
}

func TestHandleReloadsChangedDefinition(t *testing.T) {
	store := &memoryStore{def: catalog.Default()}
	d := New(store)
	next := catalog.Definition{Title: "New", Items: []catalog.Node{{Label: "only"}}}
	res := d.Handle(backend.Event{Kind: backend.KindDefinition, Data: next})
	if !res.Reloaded || res.Definition.Title != "New" {
		t.Fatalf("expected reload, got %+v", res)
	}
	if store.sets != 1 || store.def.Title != "New" {
		t.Fatalf("expected store updated once")
	}
}

func TestHandleSkipsIdenticalDefinition(t *testing.T) {
	store := &memoryStore{def: catalog.Default()}
	res := New(store).Handle(backend.Event{Kind: backend.KindDefinition, Data: catalog.Default()})
	if res.Reloaded || store.sets != 0 {
		t.Fatalf("expected identical definition ignored")
	}
}

func TestHandleReportsErrors(t *testing.T) {
	store := &memoryStore{def: catalog.Default()}
	boom := errors.New("boom")
	res := New(store).Handle(backend.Event{Kind: backend.KindDefinition, Err: boom})
	if !errors.Is(res.Err, boom) || res.Reloaded {
		t.Fatalf("expected error passed through, got %+v", res)
	}
}
