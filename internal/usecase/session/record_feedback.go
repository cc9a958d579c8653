package session

import (
	"context"
	"errors"

	"github.com/justdogsza/dog-training-api/internal/audit"
	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domain "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type RecordFeedbackInput struct {
	SessionID uint

	Notes          string
	ProgressRating *int
	BehaviorRating *int
}

type RecordFeedback struct {
	repo  domBooking.Repository
	audit *audit.Dispatcher
}

func NewRecordFeedback(
	repo domBooking.Repository,
	audit *audit.Dispatcher,
) *RecordFeedback {
	return &RecordFeedback{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RecordFeedback) Execute(
	ctx context.Context,
	scope domBooking.Scope,
	in RecordFeedbackInput,
) (*models.Session, error) {

	s, err := uc.repo.UpdateSession(ctx, in.SessionID, scope,
		func(s *models.Session) (bool, error) {
			if err := domain.RecordFeedback(s, in.Notes, in.ProgressRating, in.BehaviorRating); err != nil {
				return false, err
			}
			return true, nil
		})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, httperr.ErrBusiness("session_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &scope.UserID,
		Action:   "session_feedback_recorded",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
