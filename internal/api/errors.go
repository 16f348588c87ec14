package api

import "fmt"

// Error is a remote-rejected operation: the server answered, but with a
// non-success status. Transport failures are returned as wrapped errors, not
// as *Error.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == 404
}

// IsUnauthorized reports whether err is a remote 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == 401
}
