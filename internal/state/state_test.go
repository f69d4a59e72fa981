package state

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbutil "github.com/llehouerou/keyvault/internal/db"
	"github.com/llehouerou/keyvault/internal/prefdialog"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := dbutil.Open(dbutil.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(dbutil.MemoryPath)
	require.NoError(t, err)
	return m
}

func TestGetSelection_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	key, err := getSelection(db)
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestSaveAndGetSelection(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	require.NoError(t, saveSelection(db, "remove_unlinked"))
	key, err := getSelection(db)
	require.NoError(t, err)
	assert.Equal(t, "remove_unlinked", key)

	// Overwrite
	require.NoError(t, saveSelection(db, "other"))
	key, err = getSelection(db)
	require.NoError(t, err)
	assert.Equal(t, "other", key)
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	require.NoError(t, initSchema(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestDialogArgs_RoundTrip(t *testing.T) {
	m := openTestManager(t)
	defer m.Close()

	args, err := m.GetDialogArgs()
	require.NoError(t, err)
	assert.Nil(t, args, "no dialog saved yet")

	require.NoError(t, m.SaveDialogArgs(prefdialog.NewArgs("remove_unlinked")))
	args, err = m.GetDialogArgs()
	require.NoError(t, err)
	assert.Equal(t, prefdialog.Args{prefdialog.ArgKey: "remove_unlinked"}, args)

	require.NoError(t, m.SaveDialogArgs(prefdialog.NewArgs("other")))
	args, err = m.GetDialogArgs()
	require.NoError(t, err)
	assert.Equal(t, "other", args.Key())

	require.NoError(t, m.ClearDialogArgs())
	args, err = m.GetDialogArgs()
	require.NoError(t, err)
	assert.Nil(t, args)
}

// The argument set outlives the process: a new manager on the same file
// sees it.
func TestDialogArgs_SurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, m.SaveDialogArgs(prefdialog.NewArgs("remove_unlinked")))
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	args, err := m.GetDialogArgs()
	require.NoError(t, err)
	assert.Equal(t, "remove_unlinked", args.Key())
}

func TestSaveSelection_FlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	m.SaveSelection("first")
	m.SaveSelection("remove_unlinked")
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	key, err := m.GetSelection()
	require.NoError(t, err)
	assert.Equal(t, "remove_unlinked", key)
}

func TestMock(t *testing.T) {
	m := NewMock()

	m.SaveSelection("a")
	key, _ := m.GetSelection()
	assert.Equal(t, "a", key)

	require.NoError(t, m.SaveDialogArgs(prefdialog.NewArgs("remove_unlinked")))
	args, _ := m.GetDialogArgs()
	assert.Equal(t, "remove_unlinked", args.Key())
	require.NoError(t, m.ClearDialogArgs())
	args, _ = m.GetDialogArgs()
	assert.Nil(t, args)

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
