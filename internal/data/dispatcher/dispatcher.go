package dispatcher

import (
	"reflect"

	"github.com/atomicstack/cascade-menu/internal/backend"
	"github.com/atomicstack/cascade-menu/internal/catalog"
)

type Result struct {
	Reloaded   bool
	Definition catalog.Definition
	Err        error
}

// DefinitionStore holds the definition currently mounted by the UI.
type DefinitionStore interface {
	Definition() catalog.Definition
	SetDefinition(catalog.Definition)
}

type Dispatcher struct {
	store DefinitionStore
}

func New(store DefinitionStore) *Dispatcher {
	return &Dispatcher{store: store}
}

// Handle applies a backend event. Identical definitions and errors leave the
// store untouched; errors are handed back so the UI can report them.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindDefinition:
		if def, ok := evt.Data.(catalog.Definition); ok {
			if reflect.DeepEqual(def, d.store.Definition()) {
				return res
			}
			d.store.SetDefinition(def)
			res.Reloaded = true
			res.Definition = def
		}
	}
	return res
}
