// errors/errors.go
package errors

import "errors"

var (
	// ErrInvalidReference means a caller-supplied ID did not resolve to a vertex
	// with the expected label. Maps to 404 at the REST boundary.
	ErrInvalidReference = errors.New("referenced entity not found")

	// ErrInvalidPhoneNumber means a phone string is not a possible number in
	// international format. Maps to 400.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	ErrEntityCreationFailed = errors.New("entity creation failed")
	ErrUpdateFailed         = errors.New("update failed")
	ErrQueryFailed          = errors.New("query failed")

	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")

	ErrInvalidRequestData = errors.New("invalid request data")
)
