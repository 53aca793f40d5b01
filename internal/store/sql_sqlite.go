package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ashakirov/go-fit-keeper/internal/config"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
)

var (
	openOnce  sync.Once
	sharedDB  *DB
	sharedErr error
)

// Open returns the process-wide cache database handle, opening and migrating
// it on first use. The handle is a lazily-initialized singleton: concurrent
// first callers block on the same in-flight open, and every caller observes
// the same *DB for the lifetime of the process. The handle is never closed
// explicitly; it is released on process teardown.
//
// Open failures are classified as [ErrStorageUnavailable] so callers can
// degrade to online-only operation instead of treating the condition as
// fatal.
func Open(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	openOnce.Do(func() {
		sharedDB, sharedErr = NewConnectSQLite(ctx, cfg, log)
		if sharedErr != nil {
			return
		}
		if err := sharedDB.Migrate(); err != nil {
			sharedDB = nil
			sharedErr = fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
		}
	})
	return sharedDB, sharedErr
}

// NewConnectSQLite opens (creating on first use) the SQLite cache database at
// cfg.DSN and verifies the connection with a ping. Most callers should use
// [Open] instead, which guards against duplicate concurrent opens.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, classifySQLiteError(err))
	}

	// WAL keeps readers unblocked during queue writes; busy_timeout covers
	// the rare overlap between the replay job and UI writes.
	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA foreign_keys=ON`,
		`PRAGMA busy_timeout=5000`,
	} {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error applying pragma")
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, classifySQLiteError(err))
		}
	}

	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
