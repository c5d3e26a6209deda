package inventory

import (
	"errors"
	"fmt"
)

// FetchError reports a failed inventory request. StatusCode is zero when the
// failure happened before an HTTP status was received.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inventory fetch: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("inventory fetch: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is or wraps a FetchError.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
