package menu

import "github.com/atomicstack/cascade-menu/internal/logging/events"

// Menu is one node of a cascading menu tree: the root created by NewRoot or a
// sub menu created by Popover.Sub. Every method must be called from the
// host's event loop.
type Menu struct {
	scope    *scope
	id       NodeID
	parentID NodeID
	parent   *Menu
	host     *Popover
	opts     Options
	open     openState

	list       *List
	active     int
	trigger    *Trigger
	subTrigger *SubTrigger
	content    func(*Popover)
	popover    *Popover

	hover     hoverState
	typeahead typeahead
	unsubs    []func()
	mounted   bool
	reason    Reason
}

// NewRoot creates and mounts the root of a new tree.
func NewRoot(opts Options) *Menu {
	s := newScope(opts)
	m := newMenu(s, nil, nil, opts)
	s.root = m
	s.focus = Focus{Node: m}
	m.mount()
	return m
}

func newMenu(s *scope, parent *Menu, host *Popover, opts Options) *Menu {
	m := &Menu{
		scope:  s,
		id:     s.newID(),
		parent: parent,
		host:   host,
		opts:   opts,
		open:   newOpenState(opts),
		list:   NewList(),
		active: -1,
	}
	if parent != nil {
		m.parentID = parent.id
	}
	m.popover = &Popover{owner: m}
	return m
}

func (m *Menu) mount() {
	s := m.scope
	s.tree.Register(m.id, m.parentID)
	s.track(m)
	m.unsubs = append(m.unsubs,
		s.tree.Subscribe(EventItemActivated, func(Event) {
			m.setOpen(false, ReasonActivated)
		}),
		s.tree.Subscribe(EventMenuOpened, func(ev Event) {
			if ev.Opened.NodeID != m.id && ev.Opened.ParentID == m.parentID {
				m.setOpen(false, ReasonSibling)
			}
		}),
	)
	m.mounted = true
	events.Menu.Mount(string(m.id), string(m.parentID))
}

// Unmount removes the node and everything below it from the tree. Broadcasts
// naming its id afterwards have no effect. Unmounting the root closes the
// tree.
func (m *Menu) Unmount() {
	if m == nil || !m.mounted {
		return
	}
	done := m.scope.enter()
	defer done()
	if m.host != nil {
		m.host.detach(m)
	}
	m.unmount()
}

func (m *Menu) unmount() {
	if !m.mounted {
		return
	}
	s := m.scope
	m.stopTimers()
	if m.popover.mounted {
		m.popover.unmount()
	}
	for _, unsubscribe := range m.unsubs {
		unsubscribe()
	}
	m.unsubs = nil
	s.tree.Unregister(m.id)
	s.untrack(m)
	if owned, ok := m.open.(*ownedOpen); ok {
		owned.value = false
	}
	if m.subTrigger != nil {
		m.subTrigger.mounted = false
	}
	m.active = -1
	m.mounted = false
	events.Menu.Unmount(string(m.id))
	if m.parent == nil {
		s.tree.Close()
	}
}

func (m *Menu) requireMounted(component string) {
	if m == nil || !m.mounted {
		configPanic(component, "menu is not mounted")
	}
}

// Trigger declares the root trigger. Only a root menu may have one.
func (m *Menu) Trigger(label string) *Trigger {
	m.requireMounted("Trigger")
	if m.IsNested() {
		configPanic("Trigger", "nested menus open from a SubTrigger")
	}
	if m.trigger != nil {
		configPanic("Trigger", "trigger already declared")
	}
	m.trigger = &Trigger{owner: m, label: label}
	return m.trigger
}

// SubTrigger declares the entry in the parent popover that opens this menu.
// It takes part in the parent's keyboard navigation and typeahead.
func (m *Menu) SubTrigger(label string) *SubTrigger {
	m.requireMounted("SubTrigger")
	if !m.IsNested() {
		configPanic("SubTrigger", "SubTrigger used outside a sub menu")
	}
	if m.subTrigger != nil {
		configPanic("SubTrigger", "sub trigger already declared")
	}
	st := &SubTrigger{owner: m, label: label, mounted: true}
	l := label
	st.index = m.parent.list.Register(st, &l)
	m.subTrigger = st
	return st
}

// Popover declares the content of this menu. fn runs each time the menu
// opens; while the menu is closed none of its items exist.
func (m *Menu) Popover(fn func(*Popover)) *Popover {
	m.requireMounted("Popover")
	if fn == nil {
		configPanic("Popover", "content function is nil")
	}
	if m.content != nil {
		configPanic("Popover", "popover already declared")
	}
	m.content = fn
	done := m.scope.enter()
	defer done()
	m.sync()
	return m.popover
}

// setOpen requests a new open flag. It is a no-op when the flag already
// matches, so no broadcast is repeated.
func (m *Menu) setOpen(open bool, reason Reason) bool {
	if !m.mounted || m.open.get() == open {
		return false
	}
	m.reason = reason
	m.open.set(open)
	m.sync()
	return true
}

// Sync reconciles the popover with the open flag. Owners of a delegated flag
// call it after changing the value they return from Options.Open.
func (m *Menu) Sync() {
	if m == nil || !m.mounted {
		return
	}
	done := m.scope.enter()
	defer done()
	m.sync()
}

func (m *Menu) sync() {
	if !m.mounted || m.content == nil {
		return
	}
	open := m.open.get()
	if open == m.popover.mounted {
		return
	}
	s := m.scope
	if open {
		m.popover.mount()
		events.Menu.Open(string(m.id), string(m.parentID), m.reason.String())
		s.tree.Emit(Event{Kind: EventMenuOpened, Opened: OpenedEvent{NodeID: m.id, ParentID: m.parentID}})
		return
	}
	m.stopTimers()
	m.hover.engaged = false
	m.hover.region = nil
	m.typeahead.clear()
	m.active = -1
	m.popover.unmount()
	events.Menu.Close(string(m.id), m.reason.String())
}

// Open opens the menu. It does nothing when it is already open.
func (m *Menu) Open() {
	m.request(true)
}

// Close closes the menu and, with it, every descendant.
func (m *Menu) Close() {
	m.request(false)
}

// Toggle flips the open flag.
func (m *Menu) Toggle() {
	if m == nil || !m.mounted {
		return
	}
	m.request(!m.IsOpen())
}

func (m *Menu) request(open bool) {
	if m == nil || !m.mounted {
		return
	}
	done := m.scope.enter()
	defer done()
	m.setOpen(open, ReasonRequest)
}

func (m *Menu) stopTimers() {
	m.hover.cancel()
	m.hover.stopRest()
	m.typeahead.stop()
}

func (m *Menu) setActive(index int) {
	if index >= 0 && !m.list.navigable(index) {
		index = -1
	}
	if index == m.active {
		return
	}
	m.active = index
	events.Menu.Active(string(m.id), index)
}

// SetActive moves the active entry of an open popover. Holes and disabled
// entries clear it.
func (m *Menu) SetActive(index int) {
	if m == nil || !m.mounted || !m.popover.mounted {
		return
	}
	m.setActive(index)
}

func (m *Menu) ID() NodeID       { return m.id }
func (m *Menu) ParentID() NodeID { return m.parentID }
func (m *Menu) Parent() *Menu    { return m.parent }
func (m *Menu) IsNested() bool   { return m.parent != nil }
func (m *Menu) Mounted() bool    { return m != nil && m.mounted }
func (m *Menu) Tree() *Tree      { return m.scope.tree }
func (m *Menu) Root() *Menu      { return m.scope.root }
func (m *Menu) List() *List      { return m.list }

// IsOpen reports the current open flag. An unmounted menu is closed.
func (m *Menu) IsOpen() bool {
	return m != nil && m.mounted && m.open.get()
}

// ActiveIndex returns the active entry of the popover, or -1.
func (m *Menu) ActiveIndex() int {
	return m.active
}

// Depth is 0 for the root and grows by one per nesting level.
func (m *Menu) Depth() int {
	d := 0
	for n := m.parent; n != nil; n = n.parent {
		d++
	}
	return d
}

// Floating returns the popover. It has no items while the menu is closed.
func (m *Menu) Floating() *Popover {
	return m.popover
}

// TriggerElement returns the root trigger, if declared.
func (m *Menu) TriggerElement() *Trigger {
	return m.trigger
}

// SubTriggerElement returns the sub trigger, if declared.
func (m *Menu) SubTriggerElement() *SubTrigger {
	return m.subTrigger
}

// Reference is the rectangle the popover is positioned against.
func (m *Menu) Reference() Rect {
	if m.trigger != nil {
		return m.trigger.rect
	}
	if m.subTrigger != nil {
		return m.subTrigger.rect
	}
	return Rect{}
}

// Placement defaults to below the trigger for the root and beside the sub
// trigger for nested menus.
func (m *Menu) Placement() Placement {
	if m.opts.Placement != PlacementAuto {
		return m.opts.Placement
	}
	if m.IsNested() {
		return RightStart
	}
	return BottomStart
}

// Offset defaults to directly under the trigger for the root and one row up
// for nested menus, so a bordered popover lines its first item up with the
// sub trigger.
func (m *Menu) Offset() Offset {
	if m.opts.Offset != nil {
		return *m.opts.Offset
	}
	if m.IsNested() {
		return Offset{Align: -1}
	}
	return Offset{}
}

// Focus returns where keyboard input currently goes.
func (m *Menu) Focus() Focus {
	return m.scope.focus
}

// Layers returns the open menus in the order they opened, which is also
// their stacking order.
func (m *Menu) Layers() []*Menu {
	return append([]*Menu(nil), m.scope.layers...)
}

// Node looks up a mounted node of this tree by id.
func (m *Menu) Node(id NodeID) (*Menu, bool) {
	n, ok := m.scope.nodes[id]
	return n, ok
}

// Nodes returns every mounted node in mount order.
func (m *Menu) Nodes() []*Menu {
	return m.scope.snapshot()
}

// Scheduler returns the scheduler shared by the tree.
func (m *Menu) Scheduler() Scheduler {
	return m.scope.sched
}
