package booking

import "github.com/justdogsza/dog-training-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// transitions is the single source of truth for booking lifecycle legality:
// pending -> confirmed -> completed, cancellation from any non-terminal state.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
