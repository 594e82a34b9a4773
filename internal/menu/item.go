package menu

import "github.com/atomicstack/cascade-menu/internal/logging/events"

const (
	stateOpen   = "open"
	stateClosed = "closed"
)

func dataState(open bool) string {
	if open {
		return stateOpen
	}
	return stateClosed
}

// ItemOption configures an Item at declaration.
type ItemOption func(*Item)

// Disabled keeps the item out of navigation, typeahead and activation.
func Disabled() ItemOption {
	return func(it *Item) { it.disabled = true }
}

// OnSelect runs fn when the item is activated, before the tree closes.
func OnSelect(fn func()) ItemOption {
	return func(it *Item) { it.onSelect = fn }
}

// Item is a leaf entry of a popover.
type Item struct {
	popover  *Popover
	label    string
	disabled bool
	onSelect func()
	index    int
	rect     Rect
	mounted  bool
}

// ItemProps describes an item to a renderer.
type ItemProps struct {
	Role     string
	TabIndex int
	Disabled bool
	Active   bool
}

func (*Item) entry() {}

func (it *Item) Label() string     { return it.label }
func (it *Item) Disabled() bool    { return it.disabled }
func (it *Item) Rect() Rect        { return it.rect }
func (it *Item) SetRect(r Rect)    { it.rect = r }
func (it *Item) Index() int        { return it.index }
func (it *Item) Mounted() bool     { return it.mounted }
func (it *Item) Popover() *Popover { return it.popover }

// Active reports whether the item is the active entry of its popover.
func (it *Item) Active() bool {
	return it.mounted && it.popover.owner.active == it.index
}

// Props returns the renderer attributes. Only the active item is tabbable.
func (it *Item) Props() ItemProps {
	props := ItemProps{Role: "menuitem", TabIndex: -1, Disabled: it.disabled}
	if it.Active() {
		props.Active = true
		props.TabIndex = 0
	}
	return props
}

// Activate selects the item: its OnSelect runs, then every menu in the tree
// closes and focus returns to the root trigger. Disabled or unmounted items
// do nothing.
func (it *Item) Activate() bool {
	if it == nil || !it.mounted || it.disabled {
		return false
	}
	owner := it.popover.owner
	s := owner.scope
	done := s.enter()
	defer done()
	events.Menu.Activate(string(owner.id), it.label)
	if it.onSelect != nil {
		it.onSelect()
	}
	s.tree.Emit(Event{Kind: EventItemActivated})
	s.focus = Focus{Node: s.root}
	return true
}

// Unmount removes the item from its popover, leaving a hole in the list.
func (it *Item) Unmount() {
	if it == nil || !it.mounted {
		return
	}
	owner := it.popover.owner
	owner.list.Unregister(it.index)
	if owner.active == it.index {
		owner.active = -1
	}
	if owner.scope.pressed == it {
		owner.scope.pressed = nil
	}
	it.mounted = false
}

// SubTrigger is the entry in a parent popover that opens a sub menu.
type SubTrigger struct {
	owner   *Menu
	label   string
	index   int
	rect    Rect
	mounted bool
}

// SubTriggerProps describes a sub trigger to a renderer.
type SubTriggerProps struct {
	Role      string
	TabIndex  int
	DataState string
	Expanded  bool
	HasPopup  string
	Active    bool
}

func (*SubTrigger) entry() {}

func (st *SubTrigger) Label() string  { return st.label }
func (st *SubTrigger) Disabled() bool { return false }
func (st *SubTrigger) Rect() Rect     { return st.rect }
func (st *SubTrigger) SetRect(r Rect) { st.rect = r }
func (st *SubTrigger) Index() int     { return st.index }
func (st *SubTrigger) Menu() *Menu    { return st.owner }

// Active reports whether the sub trigger is the active entry of the parent.
func (st *SubTrigger) Active() bool {
	return st.mounted && st.owner.parent.active == st.index
}

// Props returns the renderer attributes.
func (st *SubTrigger) Props() SubTriggerProps {
	open := st.owner.IsOpen()
	props := SubTriggerProps{
		Role:      "menuitem",
		TabIndex:  -1,
		DataState: dataState(open),
		Expanded:  open,
		HasPopup:  "menu",
	}
	if st.Active() {
		props.Active = true
		props.TabIndex = 0
	}
	return props
}

// Trigger is the element that opens the root menu.
type Trigger struct {
	owner *Menu
	label string
	rect  Rect
}

// TriggerProps describes the root trigger to a renderer.
type TriggerProps struct {
	DataState string
	Expanded  bool
	HasPopup  string
}

func (t *Trigger) Label() string  { return t.label }
func (t *Trigger) Rect() Rect     { return t.rect }
func (t *Trigger) SetRect(r Rect) { t.rect = r }
func (t *Trigger) Menu() *Menu    { return t.owner }

// Props returns the renderer attributes.
func (t *Trigger) Props() TriggerProps {
	open := t.owner.IsOpen()
	return TriggerProps{DataState: dataState(open), Expanded: open, HasPopup: "menu"}
}

// Press toggles the root menu the way a pointer press does. Opening this way
// moves focus into the popover without an active item.
func (t *Trigger) Press() {
	m := t.owner
	if !m.mounted {
		return
	}
	done := m.scope.enter()
	defer done()
	if m.IsOpen() {
		m.setOpen(false, ReasonPointer)
		m.scope.focus = Focus{Node: m}
		return
	}
	m.setOpen(true, ReasonPointer)
	if m.popover.mounted {
		m.scope.focus = Focus{Node: m, InPopover: true}
	}
}
