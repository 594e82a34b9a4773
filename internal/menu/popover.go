package menu

// Popover is the floating content of a menu. It is mounted while the menu is
// open and holds the items and sub menus declared by the content function.
type Popover struct {
	owner    *Menu
	mounted  bool
	rect     Rect
	items    []*Item
	children []*Menu
}

// PopoverProps describes the popover to a renderer.
type PopoverProps struct {
	Role         string
	Nested       bool
	InitialFocus int
	ReturnFocus  bool
}

func (p *Popover) mount() {
	m := p.owner
	p.mounted = true
	m.scope.pushLayer(m)
	m.content(p)
}

func (p *Popover) unmount() {
	for i := len(p.children) - 1; i >= 0; i-- {
		p.children[i].unmount()
	}
	for _, it := range p.items {
		it.mounted = false
	}
	p.children = nil
	p.items = nil
	p.owner.list.Reset()
	p.owner.scope.popLayer(p.owner)
	p.rect = Rect{}
	p.mounted = false
}

func (p *Popover) detach(child *Menu) {
	p.children = removeMenu(p.children, child)
	if st := child.subTrigger; st != nil && st.mounted {
		p.owner.list.Unregister(st.index)
		if p.owner.active == st.index {
			p.owner.active = -1
		}
	}
}

func (p *Popover) requireMounted(component string) {
	if p == nil || p.owner == nil || !p.mounted {
		configPanic(component, "used outside an open menu popover")
	}
}

// Item declares a leaf entry. Disabled items are skipped by navigation and
// typeahead.
func (p *Popover) Item(label string, opts ...ItemOption) *Item {
	p.requireMounted("Item")
	it := &Item{popover: p, label: label, mounted: true}
	for _, opt := range opts {
		opt(it)
	}
	var typeaheadLabel *string
	if !it.disabled {
		l := label
		typeaheadLabel = &l
	}
	it.index = p.owner.list.Register(it, typeaheadLabel)
	p.items = append(p.items, it)
	return it
}

// Sub declares a nested menu inside this popover. fn declares the sub
// menu's SubTrigger and Popover.
func (p *Popover) Sub(fn func(*Menu), opts ...Options) *Menu {
	p.requireMounted("Sub")
	if fn == nil {
		configPanic("Sub", "declaration function is nil")
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	parent := p.owner
	child := newMenu(parent.scope, parent, p, o)
	child.mount()
	p.children = append(p.children, child)
	fn(child)
	return child
}

// Owner returns the menu this popover belongs to.
func (p *Popover) Owner() *Menu { return p.owner }

// Mounted reports whether the popover is currently shown.
func (p *Popover) Mounted() bool { return p.mounted }

// Rect returns the popover's last laid out rectangle.
func (p *Popover) Rect() Rect { return p.rect }

// SetRect records where the host placed the popover.
func (p *Popover) SetRect(r Rect) { p.rect = r }

// Children returns the mounted sub menus declared in this popover.
func (p *Popover) Children() []*Menu {
	return append([]*Menu(nil), p.children...)
}

// Props returns the renderer attributes of the popover.
func (p *Popover) Props() PopoverProps {
	nested := p.owner.IsNested()
	props := PopoverProps{Role: "menu", Nested: nested, ReturnFocus: !nested}
	if nested {
		props.InitialFocus = -1
	}
	return props
}

// contains reports whether pt lies in this popover or in any open popover
// below it.
func (p *Popover) contains(pt Point) bool {
	if !p.mounted {
		return false
	}
	if p.rect.Contains(pt) {
		return true
	}
	for _, child := range p.children {
		if child.mounted && child.popover.contains(pt) {
			return true
		}
	}
	return false
}
