package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a row cannot be scanned or its payload
	// cannot be decoded.
	ErrScanningRow = errors.New("failed to scan snapshot row")

	ErrEncodingPayload = errors.New("failed to encode status payload")
)
