package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported
// with. Delivery layers translate domain errors into HTTPError.
type HTTPError struct {
	Code    int
	Message string
	// Detail is an optional underlying cause string shown to the client.
	Detail string
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithDetail returns a copy of e with Detail set.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status, defaulting to 500 for invalid codes.
func (e *HTTPError) StatusCode() int {
	if e.Code < 400 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
