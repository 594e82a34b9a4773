package menu

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultHoverDelay is how long a pointer must rest on a sub trigger
	// before its menu opens.
	DefaultHoverDelay = 75 * time.Millisecond
	// DefaultTypeaheadReset is the idle time after which the typeahead
	// buffer is cleared.
	DefaultTypeaheadReset = 750 * time.Millisecond
	// DefaultSafeRegionRest is how long the pointer may rest inside a sub
	// menu's safe region before the menu closes.
	DefaultSafeRegionRest = 300 * time.Millisecond
)

// Options configures a menu node. Scheduler, the timing fields and NewID are
// read from the root only; sub menus share the root's values.
type Options struct {
	// InitialOpen opens a self-owned menu as soon as its popover is declared.
	InitialOpen bool
	// Open and OnOpenChange together hand the open flag to a controlling
	// owner. The node then never writes the flag itself; it asks through
	// OnOpenChange and reads back through Open. OnOpenChange alone is a
	// notification on a self-owned flag.
	Open         func() bool
	OnOpenChange func(open bool)

	Placement Placement
	Offset    *Offset

	Scheduler      Scheduler
	HoverDelay     time.Duration
	TypeaheadReset time.Duration
	SafeRegionRest time.Duration
	NewID          func() NodeID
}

func (o Options) controlled() bool {
	return o.Open != nil
}

func defaultNewID() NodeID {
	return NodeID(uuid.NewString())
}

// openState is the uniform accessor over self-owned and delegated open flags.
type openState interface {
	get() bool
	set(open bool)
}

type ownedOpen struct {
	value  bool
	notify func(bool)
}

func (o *ownedOpen) get() bool { return o.value }

func (o *ownedOpen) set(open bool) {
	o.value = open
	if o.notify != nil {
		o.notify(open)
	}
}

type delegatedOpen struct {
	getter func() bool
	setter func(bool)
}

func (d *delegatedOpen) get() bool { return d.getter() }

func (d *delegatedOpen) set(open bool) { d.setter(open) }

func newOpenState(opts Options) openState {
	if opts.controlled() {
		if opts.OnOpenChange == nil {
			configPanic("Menu", "a controlled open flag needs OnOpenChange")
		}
		return &delegatedOpen{getter: opts.Open, setter: opts.OnOpenChange}
	}
	return &ownedOpen{value: opts.InitialOpen, notify: opts.OnOpenChange}
}

// Reason records why a node changed state. It is carried into trace logs.
type Reason int

const (
	ReasonRequest Reason = iota
	ReasonPointer
	ReasonHover
	ReasonKeyboard
	ReasonDismiss
	ReasonEscape
	ReasonSibling
	ReasonActivated
)

func (r Reason) String() string {
	switch r {
	case ReasonRequest:
		return "request"
	case ReasonPointer:
		return "pointer"
	case ReasonHover:
		return "hover"
	case ReasonKeyboard:
		return "keyboard"
	case ReasonDismiss:
		return "dismiss"
	case ReasonEscape:
		return "escape"
	case ReasonSibling:
		return "sibling"
	case ReasonActivated:
		return "activated"
	default:
		return "unknown"
	}
}
