package relay

import (
	"errors"
	"fmt"
)

var ErrNotConfigured = errors.New("telegram relay is not configured")

// NotificationError is a failed delivery or edit of an operator message.
// It never reaches the HTTP caller.
type NotificationError struct {
	OrderID int
	Op      string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s for order %d failed: %v", e.Op, e.OrderID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
