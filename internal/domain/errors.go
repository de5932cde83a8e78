package domain

import "errors"

// Sentinel errors for cross-provider error classification.
// Providers should wrap these so the CLI can handle error categories
// uniformly without importing provider-specific SDKs.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// OperationError is a non-recoverable failure of a key operation.
// Callers should surface the message and give up; nothing in this
// category is worth retrying. StatusCode carries the offending HTTP
// status when the failure came from an API response, 0 otherwise.
type OperationError struct {
	Message    string
	StatusCode int
}

func (e *OperationError) Error() string { return e.Message }

// AsOperationError unwraps err into an *OperationError, if it is one.
func AsOperationError(err error) (*OperationError, bool) {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}
