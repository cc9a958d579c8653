package booking

import (
	"time"

	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus applies a status change to a booking. Changing to the current
// status is a successful no-op (changed=false) so repeated calls do not bump
// updated_at. Illegal moves return invalid_transition.
func ChangeStatus(b *models.Booking, to Status, now time.Time) (bool, error) {
	from := Status(b.Status)
	if from == to {
		return false, nil
	}
	if err := CanTransition(from, to); err != nil {
		return false, err
	}

	b.Status = string(to)
	switch to {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
	return true, nil
}

// ValidateTimes enforces the end_time > start_time invariant at the domain
// boundary rather than in form code.
func ValidateTimes(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return httperr.ErrBusiness("missing_time")
	}
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}
