// Package vault is the password database: entries, a shared attachment pool
// and the links between them, stored in SQLite.
//
// Entry and attachment edits are written immediately. Removing unlinked
// data is staged in memory and applied by Save, so a confirmation flow can
// decide when the destructive part reaches disk.
package vault

import (
	"database/sql"
	"errors"
	"slices"
	"sync"

	dbutil "github.com/llehouerou/keyvault/internal/db"
)

var (
	ErrClosed        = errors.New("vault: database closed")
	ErrEntryNotFound = errors.New("vault: entry not found")
	ErrNotFound      = errors.New("vault: attachment not found")
)

// Vault is an open password database.
type Vault struct {
	db   *sql.DB
	path string

	mu      sync.Mutex
	pending map[int64]struct{} // attachments staged for removal
	closed  bool
}

// Open opens (and creates if needed) the database at path.
func Open(path string) (*Vault, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Vault{
		db:      db,
		path:    path,
		pending: make(map[int64]struct{}),
	}, nil
}

// Close closes the database. Staged changes that were not saved are lost.
func (v *Vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true
	clear(v.pending)
	return v.db.Close()
}

// Path returns the file the vault was opened from.
func (v *Vault) Path() string {
	return v.path
}

// DB returns the underlying connection.
func (v *Vault) DB() *sql.DB {
	return v.db
}

// Dirty reports whether staged changes are waiting for Save.
func (v *Vault) Dirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending) > 0
}

// Pending returns the IDs of attachments staged for removal, sorted.
func (v *Vault) Pending() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]int64, 0, len(v.pending))
	for id := range v.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// RemoveUnlinkedData stages every attachment no entry links to for removal.
// Nothing is deleted until Save.
func (v *Vault) RemoveUnlinkedData() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}

	rows, err := v.db.Query(`
		SELECT a.id FROM attachments a
		WHERE NOT EXISTS (SELECT 1 FROM entry_attachments ea WHERE ea.attachment_id = a.id)
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		v.pending[id] = struct{}{}
	}
	return rows.Err()
}

// Save applies staged changes in a single transaction. Attachments linked
// again after being staged are kept.
func (v *Vault) Save() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if len(v.pending) == 0 {
		return nil
	}

	err := dbutil.WithTx(v.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			DELETE FROM attachments
			WHERE id = ?
			  AND NOT EXISTS (SELECT 1 FROM entry_attachments ea WHERE ea.attachment_id = attachments.id)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for id := range v.pending {
			if _, err := stmt.Exec(id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	clear(v.pending)
	return nil
}
