// internal/state/mock.go
package state

import (
	"database/sql"

	"github.com/llehouerou/keyvault/internal/prefdialog"
)

// Mock is a test double for Manager.
type Mock struct {
	selection  string
	dialogArgs prefdialog.Args
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSelection(key string) { m.selection = key }

func (m *Mock) GetSelection() (string, error) {
	return m.selection, nil
}

func (m *Mock) SaveDialogArgs(args prefdialog.Args) error {
	m.dialogArgs = args.Clone()
	return nil
}

func (m *Mock) GetDialogArgs() (prefdialog.Args, error) {
	return m.dialogArgs.Clone(), nil
}

func (m *Mock) ClearDialogArgs() error {
	m.dialogArgs = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetDialogArgs(args prefdialog.Args) { m.dialogArgs = args }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
