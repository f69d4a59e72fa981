package vault

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	dbutil "github.com/llehouerou/keyvault/internal/db"
)

// Entry is a stored credential.
type Entry struct {
	ID        string
	Title     string
	Username  string
	Password  string
	URL       string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddEntry stores e under a new ID and returns it with ID and timestamps set.
func (v *Vault) AddEntry(e Entry) (Entry, error) {
	now := time.Now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := v.db.Exec(`
		INSERT INTO entries (id, title, username, password, url, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Title, dbutil.NullString(e.Username), dbutil.NullString(e.Password),
		dbutil.NullString(e.URL), dbutil.NullString(e.Notes), now.Unix(), now.Unix())
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Entry returns the entry with the given ID.
func (v *Vault) Entry(id string) (Entry, error) {
	row := v.db.QueryRow(`
		SELECT id, title, username, password, url, notes, created_at, updated_at
		FROM entries WHERE id = ?
	`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	return e, err
}

// Entries returns all entries ordered by title.
func (v *Vault) Entries() ([]Entry, error) {
	rows, err := v.db.Query(`
		SELECT id, title, username, password, url, notes, created_at, updated_at
		FROM entries ORDER BY title COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes an entry and its attachment links. The attachments
// themselves stay in the pool and become unlinked if nothing else uses them.
func (v *Vault) DeleteEntry(id string) error {
	res, err := v.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	var username, password, url, notes sql.NullString
	var created, updated int64

	if err := s.Scan(&e.ID, &e.Title, &username, &password, &url, &notes, &created, &updated); err != nil {
		return Entry{}, err
	}

	e.Username = dbutil.NullStringValue(username)
	e.Password = dbutil.NullStringValue(password)
	e.URL = dbutil.NullStringValue(url)
	e.Notes = dbutil.NullStringValue(notes)
	e.CreatedAt = time.Unix(created, 0)
	e.UpdatedAt = time.Unix(updated, 0)
	return e, nil
}
