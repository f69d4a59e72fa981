// Package popupctl tracks the modal popups shown over the settings screen.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/ui/confirm"
	"github.com/llehouerou/keyvault/internal/ui/popup"
	"github.com/llehouerou/keyvault/internal/ui/styles"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Confirm: popup.SizeDialog,
		},
	}
}

// SetSize updates the dimensions for popup rendering and resizes
// visible popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Confirm:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Confirm:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// ShowConfirm displays the confirmation dialog for a bound view.
func (p *Manager) ShowConfirm(view prefdialog.View, context any) tea.Cmd {
	c := confirm.New()
	c.Show(view, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// Confirm returns the confirm popup model, or nil when hidden.
func (p *Manager) Confirm() *confirm.Model {
	if pop := p.popups[Confirm]; pop != nil {
		if c, ok := pop.(*confirm.Model); ok {
			return c
		}
	}
	return nil
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}

	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		var rendered string
		if t == Error {
			rendered = popup.RenderBordered(p.renderError(), p.width, p.height, popup.SizeAuto)
		} else {
			rendered = popup.RenderBordered(p.popups[t].View(), p.width, p.height, p.sizes[t])
		}
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	s := styles.T().S()
	return s.Danger.Render("Error") + "\n\n" +
		s.Base.Render(p.errorMsg) + "\n\n" +
		s.Subtle.Render("Press any key to dismiss")
}
