package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/llehouerou/keyvault/internal/config"
	"github.com/llehouerou/keyvault/internal/errmsg"
	"github.com/llehouerou/keyvault/internal/logging"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/resources"
	"github.com/llehouerou/keyvault/internal/vault"
)

// ErrNoDatabase is returned by commands that need an existing database.
var ErrNoDatabase = errors.New("no database")

// env holds what every command needs: configuration, logger, strings and
// the database when one exists.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	strings *resources.Catalog
	vault   *vault.Vault // nil when the database file does not exist
	dbPath  string
	closers []io.Closer
}

func loadEnv() (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	e := &env{cfg: cfg}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.Open(logPath, cfg.LogLevel())
	if err != nil {
		// Logging is best-effort; the TUI owns the terminal.
		logger = logging.Discard()
	} else {
		e.closers = append(e.closers, logCloser)
	}
	e.logger = logger

	var overrides []string
	if cfg.StringsFile != "" {
		overrides = append(overrides, cfg.StringsFile)
	}
	e.strings, err = resources.Load(overrides...)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("%s: %w", errmsg.OpStringsLoad, err)
	}

	e.dbPath = dbPath
	if e.dbPath == "" {
		if e.dbPath, err = cfg.DatabasePath(); err != nil {
			e.Close()
			return nil, err
		}
	}

	if _, statErr := os.Stat(e.dbPath); statErr == nil {
		v, err := vault.Open(e.dbPath)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("%s %s: %w", errmsg.OpDatabaseOpen, e.dbPath, err)
		}
		e.vault = v
		e.closers = append(e.closers, v)
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		e.Close()
		return nil, fmt.Errorf("%s %s: %w", errmsg.OpDatabaseOpen, e.dbPath, statErr)
	}

	logger.Info("keyvault starting", "db", e.dbPath, "db_present", e.vault != nil)
	return e, nil
}

func (e *env) requireVault() error {
	if e.vault == nil {
		return fmt.Errorf("%w at %s", ErrNoDatabase, e.dbPath)
	}
	return nil
}

func (e *env) dialogOptions() []prefdialog.Option {
	return []prefdialog.Option{
		prefdialog.WithStrings(e.strings),
		prefdialog.WithAutoSave(e.cfg.AutoSaveEnabled()),
		prefdialog.WithLogger(e.logger),
	}
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
	e.closers = nil
}
