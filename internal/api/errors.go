package api

import "net/http"

// HTTPError represents an HTTP error with a status code and a stable machine
// readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // error code (e.g. "unsupported_format")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	// ErrUnsupportedFormat rejects output formats outside {png, svg}.
	ErrUnsupportedFormat = HTTPError{Code: http.StatusBadRequest, Key: "unsupported_format"}
	// ErrInvalidRequestBody rejects bodies that cannot be bound.
	ErrInvalidRequestBody = HTTPError{Code: http.StatusBadRequest, Key: "invalid_request_body"}
)
