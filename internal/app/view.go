// internal/app/view.go
package app

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	return m.Popups.RenderOverlay(m.Settings.View())
}
