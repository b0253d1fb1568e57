package types

import (
	"fmt"
	"time"
)

type Status string

const (
	PendingStatus  Status = "pending"
	AcceptedStatus Status = "accepted"
	RejectedStatus Status = "rejected"
)

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == AcceptedStatus || s == RejectedStatus
}

type Action string

const (
	AcceptAction Action = "accept"
	RejectAction Action = "reject"
)

// Status returns the order status an operator action leads to.
func (a Action) Status() (Status, error) {
	switch a {
	case AcceptAction:
		return AcceptedStatus, nil
	case RejectAction:
		return RejectedStatus, nil
	default:
		return "", fmt.Errorf("unknown action %q", string(a))
	}
}

type Order struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Contact   string    `json:"contact" db:"contact"`
	Details   string    `json:"details" db:"details"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
