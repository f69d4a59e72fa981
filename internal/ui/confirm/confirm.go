// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/llehouerou/keyvault/internal/keymap"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/ui"
	"github.com/llehouerou/keyvault/internal/ui/popup"
	"github.com/llehouerou/keyvault/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var keys = keymap.NewResolver(keymap.ByContext("confirm"))

// Model is a yes/no confirmation popup rendering a bound dialog view.
type Model struct {
	ui.Base
	view    prefdialog.View
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup for a bound view.
func (m *Model) Show(view prefdialog.View, context any, width, height int) {
	m.view = view
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Rebind replaces the rendered view while keeping the popup open.
func (m *Model) Rebind(view prefdialog.View) {
	m.view = view
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	m.view = prefdialog.View{}
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Context returns the context passed to Show.
func (m Model) Context() any {
	return m.context
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keys.Resolve(keyMsg.String()) {
	case keymap.ActionConfirm:
		return m, m.resolve(true)
	case keymap.ActionCancel:
		return m, m.resolve(false)
	}
	return m, nil
}

// resolve deactivates the popup so only one result is ever emitted.
func (m *Model) resolve(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	width := m.textWidth()

	var b strings.Builder
	b.WriteString(s.Title.Render(m.view.Title))
	if m.view.ExplanationText != "" {
		b.WriteString("\n\n")
		b.WriteString(s.Base.Render(wordwrap.String(m.view.ExplanationText, width)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.hint())
	return b.String()
}

func (m *Model) hint() string {
	s := styles.T().S()
	return s.Key.Render(keyLabel(keymap.ActionConfirm)) + s.Subtle.Render(": ") + s.Danger.Render(m.view.PositiveLabel) +
		s.Subtle.Render(" · ") +
		s.Key.Render(keyLabel(keymap.ActionCancel)) + s.Subtle.Render(": ") + s.Muted.Render(m.view.NegativeLabel)
}

// keyLabel renders the first two keys of an action, e.g. "Enter/Y".
func keyLabel(a keymap.Action) string {
	bound := keys.KeysFor(a)
	labels := make([]string, 0, 2)
	for _, k := range bound[:min(len(bound), 2)] {
		labels = append(labels, strings.ToUpper(k[:1])+k[1:])
	}
	return strings.Join(labels, "/")
}

func (m *Model) textWidth() int {
	w := min(m.Width(), ui.DialogMaxWidth) - ui.DialogPadding
	return max(w, 20)
}
