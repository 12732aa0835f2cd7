package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSyncMappingNotFound is returned when no mapping matches the
	// requested class or name.
	ErrSyncMappingNotFound = errors.New("sync mapping was not found")

	// ErrSyncStateNotFound is returned when a mapping has no sync state yet.
	ErrSyncStateNotFound = errors.New("sync state was not found")

	// ErrSyncFailedItemNotFound is returned when no failed item carries the
	// requested uuid.
	ErrSyncFailedItemNotFound = errors.New("sync failed item was not found")

	// ErrNonUniqueResult is returned by single-row lookups that matched more
	// than one row.
	ErrNonUniqueResult = errors.New("more than one row matched a unique lookup")

	// ErrUnsupportedDriver is returned by [NewConnect] for unknown drivers.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrTransientFailure marks write errors the error classifier considers
	// retryable.
	ErrTransientFailure = errors.New("transient storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
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

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
