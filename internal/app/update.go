// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/ui/action"
	"github.com/llehouerou/keyvault/internal/ui/confirm"
	"github.com/llehouerou/keyvault/internal/ui/settings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case action.Msg:
		return m.handleUIAction(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Settings.SetSize(msg.Width, msg.Height)
	m.Popups.SetSize(msg.Width, msg.Height)
	return m, m.bindDialog()
}

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "settings":
		return m.handleSettingsAction(msg.Action)
	case "confirm":
		return m.handleConfirmAction(msg.Action)
	}
	return m, nil
}

func (m Model) handleSettingsAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case settings.OpenDialog:
		cmd := m.openDialog(act.Key)
		return m, cmd
	case settings.SelectionChanged:
		m.StateMgr.SaveSelection(act.Key)
	}
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	if act, ok := a.(confirm.Result); ok {
		return m.handleConfirmResult(act)
	}
	return m, nil
}
