// Package prefdialog implements settings dialogs that confirm a database
// mutation before running it and saving the database.
//
// A Dialog is the generic database-saving confirmation. Specializations
// supply an ExplanationProvider for the body text and a ConfirmAction for
// the mutation. The host drives the lifecycle:
//
//	d, _ := registry.Create(key)    // Created
//	d.BindView(&view)               // AwaitingChoice, may repeat
//	d.Close(db, positive)           // ClosedPositive or ClosedNegative
//
// Only the argument set (Args) survives a teardown; the host rebuilds the
// dialog with Registry.Restore and binds it again.
package prefdialog

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/keyvault/internal/resources"
)

var (
	ErrMissingKey = errors.New("prefdialog: missing preference key")
	ErrUnknownKey = errors.New("prefdialog: no dialog registered for key")
	ErrNotBound   = errors.New("prefdialog: dialog closed before its view was bound")
	ErrClosed     = errors.New("prefdialog: dialog already closed")
)

// View is the content a host renders for a dialog.
type View struct {
	Title           string
	ExplanationText string
	PositiveLabel   string
	NegativeLabel   string
}

// Dialog is a confirmation bound to a database-mutating action.
type Dialog struct {
	args        Args
	explanation ExplanationProvider
	action      ConfirmAction
	strings     Strings
	autoSave    bool
	logger      *slog.Logger

	state       State
	savePending bool
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithStrings sets the string source used when binding the view.
func WithStrings(s Strings) Option {
	return func(d *Dialog) {
		if s != nil {
			d.strings = s
		}
	}
}

// WithAutoSave controls whether Close saves the database after the action.
// When disabled the save stays pending for the host to trigger.
func WithAutoSave(enabled bool) Option {
	return func(d *Dialog) {
		d.autoSave = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dialog) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dialog for the preference named in args.
func New(args Args, explanation ExplanationProvider, action ConfirmAction, opts ...Option) (*Dialog, error) {
	if args.Key() == "" {
		return nil, ErrMissingKey
	}

	d := &Dialog{
		args:        args.Clone(),
		explanation: explanation,
		action:      action,
		strings:     resources.Default(),
		autoSave:    true,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("dialog", d.Key())

	return d, nil
}

// Key returns the preference key the dialog is bound to.
func (d *Dialog) Key() string {
	return d.args.Key()
}

// Args returns a copy of the restorable argument set.
func (d *Dialog) Args() Args {
	return d.args.Clone()
}

// State returns the current lifecycle state.
func (d *Dialog) State() State {
	return d.state
}

// SavePending reports whether the action ran but the database was not saved
// yet, either because auto-save is off or because the save failed.
func (d *Dialog) SavePending() bool {
	return d.savePending
}

// BindView fills v for display. It may be called any number of times before
// Close; every call produces the same view for the same strings.
func (d *Dialog) BindView(v *View) error {
	if d.state.Closed() {
		return ErrClosed
	}

	d.bindBase(v)
	d.state = StateBound

	if d.explanation != nil {
		v.ExplanationText = d.explanation.Explanation(d.strings)
	}

	d.state = StateAwaitingChoice
	d.logger.Debug("dialog bound")
	return nil
}

func (d *Dialog) bindBase(v *View) {
	*v = View{
		Title:         d.strings.String(resources.PreferenceTitle(d.Key())),
		PositiveLabel: d.strings.String(resources.DialogPositive),
		NegativeLabel: d.strings.String(resources.DialogNegative),
	}
}

// Close records the user's decision. On a positive result with a database
// present it runs the action and, with auto-save on, saves the database.
// A nil db or a negative result is a no-op. db is only used for the
// duration of the call.
//
// Pass an untyped nil when no database is open; a nil pointer wrapped in the
// interface is treated as present.
func (d *Dialog) Close(db Database, positive bool) error {
	switch {
	case d.state.Closed():
		return ErrClosed
	case d.state == StateCreated:
		return ErrNotBound
	}

	if !positive {
		d.state = StateClosedNegative
		d.logger.Debug("dialog dismissed")
		return nil
	}
	d.state = StateClosedPositive

	if db == nil {
		d.logger.Info("confirmed without an open database")
		return nil
	}

	if d.action != nil {
		if err := d.action.Confirm(db); err != nil {
			return fmt.Errorf("%s: %w", d.Key(), err)
		}
	}
	d.savePending = true

	if !d.autoSave {
		d.logger.Info("action applied, save deferred")
		return nil
	}

	if err := db.Save(); err != nil {
		return fmt.Errorf("%s: save: %w", d.Key(), err)
	}
	d.savePending = false
	d.logger.Info("action applied and database saved")
	return nil
}
