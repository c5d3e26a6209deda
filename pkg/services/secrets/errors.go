package secrets

import (
	"errors"
	"fmt"
)

// ResolutionError reports a failure to decrypt one of the configured
// secrets. It carries the secret's label, never its content.
type ResolutionError struct {
	Label string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve secret %q: %v", e.Label, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// IsResolutionError reports whether err is or wraps a ResolutionError.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}
