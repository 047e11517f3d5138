package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
	ErrEmptyPassword = errors.New("password is required")

	ErrMissingField       = errors.New("field required")
	ErrInvalidFieldType   = errors.New("field has an invalid type")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrImmutableField     = errors.New("field cannot be updated")
	ErrInvalidJoiningDate = errors.New("joining_date must be a date in YYYY-MM-DD form")
	ErrEmptyEmployeeID    = errors.New("employee_id cannot be empty")
)
