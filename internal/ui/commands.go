package ui

import (
	"strings"

	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const pathSeparator = " › "

type selectedMsg struct {
	selection catalog.Selection
}

func (m *Model) queueSelection(sel catalog.Selection) {
	m.selections = append(m.selections, sel)
}

func (m *Model) drainSelections() []tea.Cmd {
	if len(m.selections) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.selections))
	for _, sel := range m.selections {
		cmds = append(cmds, m.bus.Execute(command.Request{
			ID:        strings.Join(sel.Path, "/"),
			Label:     sel.Label(),
			Handler:   m.action,
			Selection: sel,
		}))
	}
	m.selections = nil
	return cmds
}

func reportSelection(sel catalog.Selection) tea.Cmd {
	return func() tea.Msg {
		return selectedMsg{selection: sel}
	}
}

func (m *Model) handleSelectedMsg(msg tea.Msg) tea.Cmd {
	selected, ok := msg.(selectedMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	m.status = selectionStatus(selected.selection)
	return nil
}

func selectionStatus(sel catalog.Selection) string {
	if msg := strings.TrimSpace(sel.Node.Message); msg != "" {
		return msg
	}
	return "Selected: " + strings.Join(sel.Path, pathSeparator)
}
