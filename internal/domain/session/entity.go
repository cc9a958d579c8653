package session

import (
	"time"

	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus mirrors the booking machine: same-status calls are successful
// no-ops, illegal moves are rejected.
func ChangeStatus(s *models.Session, to Status, now time.Time) (bool, error) {
	from := Status(s.Status)
	if from == to {
		return false, nil
	}
	if err := CanTransition(from, to); err != nil {
		return false, err
	}

	s.Status = string(to)
	switch to {
	case StatusCancelled:
		s.CancelledAt = &now
	case StatusCompleted:
		s.CompletedAt = &now
	}
	return true, nil
}

// RecordFeedback sets outcome notes and the optional 1-5 ratings. Ratings
// outside the range are rejected rather than stored.
func RecordFeedback(s *models.Session, notes string, progress, behavior *int) error {
	if err := validRating(progress); err != nil {
		return err
	}
	if err := validRating(behavior); err != nil {
		return err
	}

	s.Notes = notes
	if progress != nil {
		s.ProgressRating = progress
	}
	if behavior != nil {
		s.BehaviorRating = behavior
	}
	return nil
}

func validRating(r *int) error {
	if r == nil {
		return nil
	}
	if *r < 1 || *r > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}
