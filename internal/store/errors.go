package store

import "errors"

// Sentinel errors returned by local store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the underlying SQLite engine
	// cannot be opened or has become unusable (missing file permissions,
	// corrupted database file, storage disabled). The condition is non-fatal:
	// the caller is expected to log a warning and continue operating without
	// offline caching.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrQuotaExceeded is returned when a write is rejected because the
	// database or the filesystem it lives on is out of space. Like
	// [ErrStorageUnavailable] it is non-fatal to the host application.
	ErrQuotaExceeded = errors.New("local storage quota exceeded")

	// ErrNotFound is returned by point lookups when no record exists under
	// the requested key. A missing key is an ordinary outcome, not a
	// failure; callers match it with [errors.Is] and treat it as "no cached
	// record".
	ErrNotFound = errors.New("record not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when a queue entry payload cannot be
	// serialised to JSON before being written to the queue table.
	ErrEncodingPayload = errors.New("failed to encode queue payload")

	// ErrDecodingPayload is returned when a stored queue entry payload cannot
	// be deserialised back into its tagged-union form.
	ErrDecodingPayload = errors.New("failed to decode queue payload")
)
