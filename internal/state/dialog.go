package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/keyvault/internal/prefdialog"
)

// SaveDialogArgs remembers the argument set of the dialog currently shown,
// so it can be restored if the process dies before the dialog is closed.
func (m *Manager) SaveDialogArgs(args prefdialog.Args) error {
	encoded, err := args.Encode()
	if err != nil {
		return err
	}
	_, err = m.db.Exec(`
		INSERT INTO dialog_state (id, args, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			args = excluded.args,
			saved_at = excluded.saved_at
	`, encoded, time.Now().Unix())
	return err
}

// GetDialogArgs returns the saved argument set, or nil when no dialog was open.
func (m *Manager) GetDialogArgs() (prefdialog.Args, error) {
	var encoded string
	err := m.db.QueryRow(`SELECT args FROM dialog_state WHERE id = 1`).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no open dialog is the common case
	}
	if err != nil {
		return nil, err
	}
	return prefdialog.DecodeArgs(encoded)
}

// ClearDialogArgs forgets the saved argument set.
func (m *Manager) ClearDialogArgs() error {
	_, err := m.db.Exec(`DELETE FROM dialog_state WHERE id = 1`)
	return err
}
