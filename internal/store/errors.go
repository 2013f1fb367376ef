package store

import "errors"

// Sentinel errors returned by the session repository. Match with [errors.Is].
var (
	// ErrLocalSessionNotFound is returned by Load when nothing has been
	// persisted under the namespace yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrCorruptedSession is returned when the persisted record cannot be
	// decoded (bad user JSON or a token that fails to unseal).
	ErrCorruptedSession = errors.New("persisted session is corrupted")

	// ErrPreferenceNotFound is returned when a preference key was never saved.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Low-level database errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPDATE/DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning the session row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
