// internal/app/dialog.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/app/popupctl"
	"github.com/llehouerou/keyvault/internal/errmsg"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/resources"
	"github.com/llehouerou/keyvault/internal/ui/confirm"
)

// openDialog creates the dialog for key, persists its arguments and shows it.
func (m *Model) openDialog(key string) tea.Cmd {
	if m.dialog != nil {
		return nil
	}

	d, err := m.Registry.Create(key, m.dialogOptions()...)
	if err != nil {
		m.Logger.Error("create dialog", "key", key, "err", err)
		m.Popups.ShowError(errmsg.Format(errmsg.OpDialogOpen, err))
		return nil
	}
	if err := m.StateMgr.SaveDialogArgs(d.Args()); err != nil {
		m.Logger.Warn("persist dialog args", "key", key, "err", err)
	}

	m.dialog = d
	m.Logger.Debug("dialog opened", "key", key)
	return m.bindDialog()
}

// restoreDialog rebuilds a dialog from persisted arguments. It is shown once
// the terminal size is known.
func (m *Model) restoreDialog() {
	args, err := m.StateMgr.GetDialogArgs()
	if err != nil {
		m.Logger.Warn("read dialog args", "err", err)
		return
	}
	if args == nil {
		return
	}

	d, err := m.Registry.Restore(args, m.dialogOptions()...)
	if err != nil {
		m.Logger.Error("restore dialog", "args", args, "err", err)
		m.Popups.ShowError(errmsg.Format(errmsg.OpDialogRestore, err))
		if errors.Is(err, prefdialog.ErrUnknownKey) || errors.Is(err, prefdialog.ErrMissingKey) {
			_ = m.StateMgr.ClearDialogArgs()
		}
		return
	}

	m.dialog = d
	m.Settings.Select(d.Key())
	m.Logger.Debug("dialog restored", "key", d.Key())
}

// bindDialog (re)binds the open dialog's view and shows or refreshes the
// confirm popup. Nothing is shown before the first window size.
func (m *Model) bindDialog() tea.Cmd {
	if m.dialog == nil || m.Width == 0 {
		return nil
	}

	var v prefdialog.View
	if err := m.dialog.BindView(&v); err != nil {
		m.Logger.Error("bind dialog", "key", m.dialog.Key(), "err", err)
		return nil
	}
	m.view = v

	if c := m.Popups.Confirm(); c != nil && c.Active() && c.Context() == m.dialog.Key() {
		c.Rebind(v)
		return nil
	}
	m.Settings.SetFocused(false)
	return m.Popups.ShowConfirm(v, m.dialog.Key())
}

// handleConfirmResult closes the open dialog with the user's choice.
// Results carry the key the popup was shown for; a result for any other
// dialog is dropped.
func (m Model) handleConfirmResult(res confirm.Result) (tea.Model, tea.Cmd) {
	d := m.dialog
	if d != nil && res.Context != d.Key() {
		m.Logger.Warn("confirm result for another dialog", "key", d.Key(), "context", res.Context)
		return m, nil
	}

	m.Popups.Hide(popupctl.Confirm)
	m.Settings.SetFocused(true)
	if d == nil {
		return m, nil
	}
	m.dialog = nil
	m.view = prefdialog.View{}

	if err := m.StateMgr.ClearDialogArgs(); err != nil {
		m.Logger.Warn("clear dialog args", "err", err)
	}

	err := d.Close(m.database(), res.Confirmed)
	m.Logger.Info("dialog closed", "key", d.Key(), "positive", res.Confirmed, "state", d.State().String())
	if err != nil {
		m.Logger.Error("close dialog", "key", d.Key(), "err", err)
		m.Popups.ShowError(errmsg.Format(errmsg.OpRemoveUnlinked, err))
		m.refreshStats()
		return m, nil
	}

	switch {
	case !res.Confirmed:
		m.Settings.SetStatus(m.Strings.String(resources.StatusCancelled))
	case m.Vault == nil:
		m.Settings.SetStatus(m.Strings.String(resources.StatusNoDatabase))
	case d.SavePending():
		m.Settings.SetStatus(m.Strings.String(resources.StatusUnlinkedStaged))
	default:
		m.Settings.SetStatus(m.Strings.String(resources.StatusUnlinkedRemoved))
	}
	m.refreshStats()
	return m, nil
}

// saveDatabase applies staged changes on explicit request.
func (m *Model) saveDatabase() {
	if m.Vault == nil {
		m.Settings.SetStatus(m.Strings.String(resources.StatusNoDatabase))
		return
	}
	if !m.Vault.Dirty() {
		return
	}
	if err := m.Vault.Save(); err != nil {
		m.Logger.Error("save database", "err", err)
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpDatabaseSave, m.Vault.Path(), err))
		return
	}
	m.Logger.Info("database saved", "path", m.Vault.Path())
	m.Settings.SetStatus(m.Strings.String(resources.StatusSaved))
	m.refreshStats()
}
