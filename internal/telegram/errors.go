package telegram

import (
	"errors"
	"fmt"
)

var (
	ErrUnknown = errors.New("unknown telegram server error")
)

type ErrThrottle struct {
	RetryAfter int
}

func (e *ErrThrottle) Error() string {
	return fmt.Sprintf("too many requests, retry after %d seconds", e.RetryAfter)
}

// APIError is an ok:false reply from the Bot API.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}
