package menu

import "sync"

// NodeID identifies a mounted menu node. The empty id means "no node" and is
// used as the parent of the root.
type NodeID string

// EventKind enumerates the broadcasts carried by a Tree.
type EventKind int

const (
	EventMenuOpened EventKind = iota
	EventItemActivated
)

func (k EventKind) String() string {
	switch k {
	case EventMenuOpened:
		return "menu-opened"
	case EventItemActivated:
		return "item-activated"
	default:
		return "unknown"
	}
}

// OpenedEvent is the payload of EventMenuOpened. ParentID is empty for the root.
type OpenedEvent struct {
	NodeID   NodeID `json:"nodeId"`
	ParentID NodeID `json:"parentId"`
}

// Event is a single broadcast. Opened is only meaningful for EventMenuOpened.
type Event struct {
	Kind   EventKind
	Opened OpenedEvent
}

// Handler receives tree broadcasts.
type Handler func(Event)

type subscription struct {
	id      uint64
	kind    EventKind
	handler Handler
	active  bool
}

// Tree is the registry shared by every node descending from one root menu.
// It maps node ids to parent ids and fans broadcasts out to subscribers.
type Tree struct {
	mu      sync.Mutex
	parents map[NodeID]NodeID
	subs    []*subscription
	nextSub uint64
	closed  bool
}

// NewTree constructs an empty registry.
func NewTree() *Tree {
	return &Tree{parents: make(map[NodeID]NodeID)}
}

// Register records a node and its parent. Registering an id twice updates the
// parent. Registration on a closed tree is ignored.
func (t *Tree) Register(id, parent NodeID) {
	if id == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.parents[id] = parent
}

// Unregister removes a node. Unknown ids are ignored.
func (t *Tree) Unregister(id NodeID) {
	t.mu.Lock()
	delete(t.parents, id)
	t.mu.Unlock()
}

// Has reports whether id is currently registered.
func (t *Tree) Has(id NodeID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.parents[id]
	return ok
}

// Parent returns the parent of id. The boolean is false when id is unknown or
// is the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	parent, ok := t.parents[id]
	if !ok || parent == "" {
		return "", false
	}
	return parent, true
}

// Children lists the registered direct children of id in no particular order.
func (t *Tree) Children(id NodeID) []NodeID {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []NodeID
	for child, parent := range t.parents {
		if parent == id && child != id {
			out = append(out, child)
		}
	}
	return out
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.parents)
}

// Subscribe adds a handler for kind and returns a function removing it. The
// returned function is safe to call more than once.
func (t *Tree) Subscribe(kind EventKind, handler Handler) (unsubscribe func()) {
	if handler == nil {
		return func() {}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return func() {}
	}
	t.nextSub++
	sub := &subscription{id: t.nextSub, kind: kind, handler: handler, active: true}
	t.subs = append(t.subs, sub)
	return func() { t.remove(sub.id) }
}

func (t *Tree) remove(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, sub := range t.subs {
		if sub.id == id {
			sub.active = false
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			return
		}
	}
}

// Emit delivers ev to every current subscriber of its kind, synchronously and
// in subscription order. Handlers run outside the lock and may subscribe,
// unsubscribe or emit. A subscriber removed while the emission is in
// progress is skipped.
func (t *Tree) Emit(ev Event) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	targets := make([]*subscription, 0, len(t.subs))
	for _, sub := range t.subs {
		if sub.kind == ev.Kind {
			targets = append(targets, sub)
		}
	}
	t.mu.Unlock()

	for _, sub := range targets {
		t.mu.Lock()
		active := sub.active
		t.mu.Unlock()
		if !active {
			continue
		}
		sub.handler(ev)
	}
}

// Close drops every node and subscriber. Later calls become no-ops.
func (t *Tree) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, sub := range t.subs {
		sub.active = false
	}
	t.subs = nil
	t.parents = make(map[NodeID]NodeID)
	t.closed = true
}

// Closed reports whether Close has been called.
func (t *Tree) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
