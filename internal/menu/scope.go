package menu

import "time"

// Focus is where keyboard input goes. InPopover false means the root trigger
// holds focus.
type Focus struct {
	Node      *Menu
	InPopover bool
}

// scope is the state shared by every node under one root: the tree, the
// scheduler, the mount order, the stack of open popovers and focus.
type scope struct {
	tree           *Tree
	root           *Menu
	sched          Scheduler
	hoverDelay     time.Duration
	typeaheadReset time.Duration
	safeRegionRest time.Duration
	newID          func() NodeID

	nodes   map[NodeID]*Menu
	order   []*Menu
	layers  []*Menu
	focus   Focus
	pressed *Item
	depth   int
}

func newScope(opts Options) *scope {
	s := &scope{
		tree:           NewTree(),
		sched:          opts.Scheduler,
		hoverDelay:     opts.HoverDelay,
		typeaheadReset: opts.TypeaheadReset,
		safeRegionRest: opts.SafeRegionRest,
		newID:          opts.NewID,
		nodes:          make(map[NodeID]*Menu),
	}
	if s.sched == nil {
		s.sched = NewClock(time.Now())
	}
	if s.hoverDelay <= 0 {
		s.hoverDelay = DefaultHoverDelay
	}
	if s.typeaheadReset <= 0 {
		s.typeaheadReset = DefaultTypeaheadReset
	}
	if s.safeRegionRest <= 0 {
		s.safeRegionRest = DefaultSafeRegionRest
	}
	if s.newID == nil {
		s.newID = defaultNewID
	}
	return s
}

// enter marks the start of an externally triggered transition. Focus is
// repaired once the outermost transition returns, after every broadcast and
// cascade has settled.
func (s *scope) enter() func() {
	s.depth++
	return func() {
		s.depth--
		if s.depth == 0 {
			s.repairFocus()
		}
	}
}

func (s *scope) run(fn func()) {
	done := s.enter()
	defer done()
	fn()
}

func (s *scope) track(m *Menu) {
	s.nodes[m.id] = m
	s.order = append(s.order, m)
}

func (s *scope) untrack(m *Menu) {
	delete(s.nodes, m.id)
	s.order = removeMenu(s.order, m)
	s.layers = removeMenu(s.layers, m)
	if s.pressed != nil && s.pressed.popover != nil && s.pressed.popover.owner == m {
		s.pressed = nil
	}
}

func (s *scope) pushLayer(m *Menu) {
	s.layers = append(s.layers, m)
}

func (s *scope) popLayer(m *Menu) {
	s.layers = removeMenu(s.layers, m)
}

func removeMenu(list []*Menu, m *Menu) []*Menu {
	for i, candidate := range list {
		if candidate == m {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (s *scope) snapshot() []*Menu {
	return append([]*Menu(nil), s.order...)
}

// repairFocus moves focus off closed or unmounted nodes: to the nearest
// ancestor whose popover is still open, otherwise to the root trigger.
func (s *scope) repairFocus() {
	f := s.focus
	if f.Node == nil {
		s.focus = Focus{Node: s.root}
		return
	}
	if f.Node.mounted && (!f.InPopover || f.Node.popover.mounted) {
		return
	}
	for n := f.Node.parent; n != nil; n = n.parent {
		if n.mounted && n.popover.mounted {
			s.focus = Focus{Node: n, InPopover: true}
			return
		}
	}
	s.focus = Focus{Node: s.root}
}
