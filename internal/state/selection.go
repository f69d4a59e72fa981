package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/keyvault/internal/db"
)

func getSelection(db *sql.DB) (string, error) {
	var key sql.NullString
	err := db.QueryRow(`SELECT selected_key FROM settings_state WHERE id = 1`).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return dbutil.NullStringValue(key), nil
}

func saveSelection(db *sql.DB, key string) error {
	_, err := db.Exec(`
		INSERT INTO settings_state (id, selected_key) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET selected_key = excluded.selected_key
	`, dbutil.NullString(key))
	return err
}
