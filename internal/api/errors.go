package api

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
)

// Error is a non-2xx response from the remote API, surfaced to the caller
// unmodified. Only 401 gets special handling (the refresh protocol); every
// other status propagates as-is.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is an API 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == fasthttp.StatusUnauthorized
}
