package ui

import (
	"strings"

	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/atomicstack/cascade-menu/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
	Space    key.Binding
	Escape   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "sub menu")),
		Right:    key.NewBinding(key.WithKeys("right")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:    key.NewBinding(key.WithKeys(" ")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Tab:      key.NewBinding(key.WithKeys("tab")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Enter, k.Escape, k.Quit}
}

func (k keyMap) helpLine() string {
	parts := make([]string, 0, len(k.ShortHelp()))
	for _, b := range k.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// menuKeys translates a terminal key press into menu keys. Typed text turns
// into one rune key per character.
func (k keyMap) menuKeys(msg tea.KeyMsg) []menu.Key {
	code := menu.KeyNone
	switch {
	case key.Matches(msg, k.Up):
		code = menu.KeyUp
	case key.Matches(msg, k.Down):
		code = menu.KeyDown
	case key.Matches(msg, k.Left):
		code = menu.KeyLeft
	case key.Matches(msg, k.Right):
		code = menu.KeyRight
	case key.Matches(msg, k.Home):
		code = menu.KeyHome
	case key.Matches(msg, k.End):
		code = menu.KeyEnd
	case key.Matches(msg, k.Enter):
		code = menu.KeyEnter
	case key.Matches(msg, k.Space), msg.Type == tea.KeySpace:
		code = menu.KeySpace
	case key.Matches(msg, k.Escape):
		code = menu.KeyEscape
	case key.Matches(msg, k.Tab):
		code = menu.KeyTab
	case key.Matches(msg, k.ShiftTab):
		code = menu.KeyShiftTab
	}
	if code != menu.KeyNone {
		return []menu.Key{{Code: code}}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	keys := make([]menu.Key, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		keys = append(keys, menu.Key{Code: menu.KeyRune, Rune: r})
	}
	return keys
}

// handleKeyMsg feeds key presses to the menu. Escape with nothing left to
// close quits, like ctrl+c.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.root == nil {
		return nil
	}
	handled := false
	for _, k := range m.keys.menuKeys(keyMsg) {
		if m.root.KeyDown(k) {
			handled = true
		}
	}
	events.UI.Key(keyMsg.String(), handled)
	if !handled && key.Matches(keyMsg, m.keys.Escape) {
		return tea.Quit
	}
	return nil
}

// handleMouseMsg feeds pointer motion and left button presses to the menu.
// A press also counts as a move so the pressed entry becomes active.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.root == nil {
		return nil
	}
	p := menu.CellPoint(ev.X, ev.Y)
	switch ev.Action {
	case tea.MouseActionMotion:
		m.root.PointerMove(p)
		events.UI.Pointer("move", ev.X, ev.Y)
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		m.root.PointerMove(p)
		m.root.PointerDown(p)
		events.UI.Pointer("down", ev.X, ev.Y)
	case tea.MouseActionRelease:
		m.root.PointerUp(p)
		events.UI.Pointer("up", ev.X, ev.Y)
	}
	return nil
}
