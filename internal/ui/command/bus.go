package command

import (
	"fmt"

	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Action turns an activated menu entry into a Bubble Tea command.
type Action func(catalog.Selection) tea.Cmd

// Request encapsulates an action invocation.
type Request struct {
	ID        string
	Label     string
	Handler   Action
	Selection catalog.Selection
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req.Selection)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
