// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/app/handler"
	"github.com/llehouerou/keyvault/internal/keymap"
)

// handleKey offers a key to popups first, then global bindings, then the
// settings list.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, cmd := handler.Chain(msg,
		m.handlePopupKey,
		m.handleGlobalKey,
		m.handleSettingsKey,
	)
	return m, cmd
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return handler.Handled(cmd)
	}
	return handler.NotHandled
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) handler.Result {
	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		if err := m.StateMgr.Close(); err != nil {
			m.Logger.Warn("close state", "err", err)
		}
		return handler.Handled(tea.Quit)
	case keymap.ActionSave:
		m.saveDatabase()
		return handler.HandledNoCmd
	case keymap.ActionHelp:
		m.Settings.ToggleHelp()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) handler.Result {
	var cmd tea.Cmd
	m.Settings, cmd = m.Settings.Update(msg)
	return handler.Handled(cmd)
}
