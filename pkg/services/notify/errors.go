package notify

import (
	"errors"
	"fmt"
)

// DeliveryError reports a failed webhook post. StatusCode is zero when the
// failure happened before an HTTP status was received.
type DeliveryError struct {
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("webhook delivery: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook delivery: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// IsDeliveryError reports whether err is or wraps a DeliveryError.
func IsDeliveryError(err error) bool {
	var delErr *DeliveryError
	return errors.As(err, &delErr)
}
