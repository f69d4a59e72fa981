// Package app hosts the settings screen and drives preference dialogs
// through their lifecycle.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/keyvault/internal/app/popupctl"
	"github.com/llehouerou/keyvault/internal/errmsg"
	"github.com/llehouerou/keyvault/internal/keymap"
	"github.com/llehouerou/keyvault/internal/logging"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/resources"
	"github.com/llehouerou/keyvault/internal/state"
	"github.com/llehouerou/keyvault/internal/ui/settings"
	"github.com/llehouerou/keyvault/internal/vault"
)

// Compile-time check that the vault satisfies the dialog's database contract.
var _ prefdialog.Database = (*vault.Vault)(nil)

// Options carries the collaborators of the root model.
type Options struct {
	Vault    *vault.Vault    // nil when no database is open
	State    state.Interface // required
	Strings  *resources.Catalog
	Registry *prefdialog.Registry
	AutoSave bool
	Logger   *slog.Logger
}

// Model is the root application model.
type Model struct {
	Settings settings.Model
	Popups   *popupctl.Manager
	Registry *prefdialog.Registry
	StateMgr state.Interface
	Vault    *vault.Vault
	Strings  *resources.Catalog
	Keys     *keymap.Resolver
	Logger   *slog.Logger
	AutoSave bool

	dialog *prefdialog.Dialog
	view   prefdialog.View

	Width  int
	Height int
}

// New builds the root model and restores the persisted selection and any
// dialog that was open when the previous session ended.
func New(opts Options) Model {
	if opts.Strings == nil {
		opts.Strings = resources.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prefdialog.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	m := Model{
		Settings: settings.New(opts.Strings, opts.Registry.Keys()),
		Popups:   popupctl.New(),
		Registry: opts.Registry,
		StateMgr: opts.State,
		Vault:    opts.Vault,
		Strings:  opts.Strings,
		Keys:     keymap.NewResolver(keymap.ForContexts("global")),
		Logger:   opts.Logger,
		AutoSave: opts.AutoSave,
	}

	if sel, err := m.StateMgr.GetSelection(); err != nil {
		m.Logger.Warn("restore selection", "err", err)
	} else if sel != "" {
		m.Settings.Select(sel)
	}

	m.restoreDialog()
	m.refreshStats()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Dialog returns the open dialog, or nil.
func (m Model) Dialog() *prefdialog.Dialog {
	return m.dialog
}

// database returns the open vault as a Database, or an untyped nil so the
// dialog sees the database as absent.
func (m Model) database() prefdialog.Database {
	if m.Vault == nil {
		return nil
	}
	return m.Vault
}

func (m Model) dialogOptions() []prefdialog.Option {
	return []prefdialog.Option{
		prefdialog.WithStrings(m.Strings),
		prefdialog.WithAutoSave(m.AutoSave),
		prefdialog.WithLogger(m.Logger),
	}
}

func (m *Model) refreshStats() {
	if m.Vault == nil {
		m.Settings.SetStats(nil)
		return
	}
	st, err := m.Vault.Stats()
	if err != nil {
		m.Logger.Error("load stats", "err", err)
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpDatabaseStats, m.Vault.Path(), err))
		return
	}
	m.Settings.SetStats(&st)
}
