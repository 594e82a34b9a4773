package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/cascade-menu/internal/backend"
	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/data/dispatcher"
	"github.com/atomicstack/cascade-menu/internal/layout"
	"github.com/atomicstack/cascade-menu/internal/logging"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/atomicstack/cascade-menu/internal/menu"
	"github.com/atomicstack/cascade-menu/internal/metrics"
	"github.com/atomicstack/cascade-menu/internal/theme"
	"github.com/atomicstack/cascade-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Definition     catalog.Definition
	Width          int
	Height         int
	ShowFooter     bool
	HoverDelay     time.Duration
	TypeaheadReset time.Duration
	OpenPath       string
	Watcher        *backend.Watcher
	Recorder       *metrics.Recorder
	// Action runs for every activated item. The default reports the
	// selection in the status line.
	Action command.Action
	// Clock drives hover and typeahead timers. ManualClock stops the model
	// from scheduling ticks, so time only moves when a tickMsg arrives.
	Clock       *menu.Clock
	ManualClock bool
	NewID       func() menu.NodeID
	// Positioner places popovers. The default is layout.Placer.
	Positioner menu.Positioner
}

// Model implements the Bubble Tea model hosting a cascading menu.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	clock          *menu.Clock
	manualClock    bool
	tickAt         time.Time
	hoverDelay     time.Duration
	typeaheadReset time.Duration
	newID          func() menu.NodeID

	root        *menu.Menu
	store       *definitionStore
	selections  []catalog.Selection
	stopObserve func()

	placer menu.Positioner
	boxes  []popoverBox

	status string
	errMsg string

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
	recorder   *metrics.Recorder
	bus        *command.Bus
	action     command.Action
	keys       keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts the definition and applies the startup open path.
func NewModel(opts Options) *Model {
	def := opts.Definition
	if len(def.Items) == 0 {
		def = catalog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = menu.NewClock(time.Now())
	}
	m := &Model{
		showFooter:     opts.ShowFooter,
		clock:          clock,
		manualClock:    opts.ManualClock,
		hoverDelay:     opts.HoverDelay,
		typeaheadReset: opts.TypeaheadReset,
		newID:          opts.NewID,
		store:          &definitionStore{def: def},
		placer:         opts.Positioner,
		backend:        opts.Watcher,
		recorder:       opts.Recorder,
		bus:            command.New(),
		action:         opts.Action,
		keys:           defaultKeyMap(),
	}
	if m.action == nil {
		m.action = reportSelection
	}
	if m.placer == nil {
		m.placer = layout.Placer{}
	}
	m.dispatcher = dispatcher.New(m.store)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.mountRoot()
	if opts.OpenPath != "" {
		if err := m.openPath(opts.OpenPath); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
	}
	m.registerHandlers()
	m.layoutMenus()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.scheduleTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return batch(cmds)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if _, ok := msg.(tickMsg); !ok && !m.manualClock {
		m.clock.AdvanceTo(time.Now())
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(selectedMsg{}):       m.handleSelectedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate turns queued selections into commands, lays the open menus
// out again and arms a tick for the next timer deadline.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.drainSelections()...)
	m.layoutMenus()
	if cmd := m.scheduleTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return batch(cmds)
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

// Root returns the mounted root menu.
func (m *Model) Root() *menu.Menu {
	return m.root
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Err returns the last reported error, if any.
func (m *Model) Err() string {
	return m.errMsg
}

// Definition returns the definition currently mounted.
func (m *Model) Definition() catalog.Definition {
	return m.store.Definition()
}

type definitionStore struct {
	def catalog.Definition
}

func (s *definitionStore) Definition() catalog.Definition       { return s.def }
func (s *definitionStore) SetDefinition(def catalog.Definition) { s.def = def }
