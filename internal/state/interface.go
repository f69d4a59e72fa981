// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/keyvault/internal/prefdialog"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveSelection(key string)
	GetSelection() (string, error)
	SaveDialogArgs(args prefdialog.Args) error
	GetDialogArgs() (prefdialog.Args, error)
	ClearDialogArgs() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
