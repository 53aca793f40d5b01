package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// classifySQLiteError maps low-level sqlite3 driver errors onto the store's
// sentinel taxonomy so callers never need to import the driver package.
//
//   - SQLITE_FULL / SQLITE_TOOBIG / SQLITE_IOERR → [ErrQuotaExceeded]
//   - SQLITE_CANTOPEN / SQLITE_NOTADB / SQLITE_PERM / SQLITE_READONLY →
//     [ErrStorageUnavailable]
//
// Any other error is returned unchanged; callers wrap it with the relevant
// low-level sentinel.
func classifySQLiteError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code {
	case sqlite3.ErrFull, sqlite3.ErrTooBig, sqlite3.ErrIoErr:
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrPerm, sqlite3.ErrReadonly:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	default:
		return err
	}
}
