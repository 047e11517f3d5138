package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same
	// username is already stored.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmployeeAlreadyExists is returned when another employee already
	// uses the employee_id being written.
	ErrEmployeeAlreadyExists = errors.New("employee already exists")

	// ErrEmployeeNotFound is returned when no employee has the requested
	// employee_id.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDepartmentNotFound is returned by the salary aggregation when the
	// department has no employees.
	ErrDepartmentNotFound = errors.New("no employees in department")

	// ErrDocumentRejected is returned when the store's document schema
	// rejects a write.
	ErrDocumentRejected = errors.New("document rejected by schema validation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a single result row cannot be scanned
	// or its document cannot be decoded.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a document cannot be encoded to JSON.
	ErrEncodingDocument = errors.New("failed to encode document")
)
