package session

import (
	"context"
	"errors"

	"github.com/justdogsza/dog-training-api/internal/audit"
	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domain "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

type ChangeSessionStatus struct {
	repo  domBooking.Repository
	audit *audit.Dispatcher
}

func NewChangeSessionStatus(
	repo domBooking.Repository,
	audit *audit.Dispatcher,
) *ChangeSessionStatus {
	return &ChangeSessionStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ChangeSessionStatus) Execute(
	ctx context.Context,
	scope domBooking.Scope,
	sessionID uint,
	target domain.Status,
) (*models.Session, error) {

	now := timezone.Now()

	var changed bool
	s, err := uc.repo.UpdateSession(ctx, sessionID, scope,
		func(s *models.Session) (bool, error) {
			var err error
			changed, err = domain.ChangeStatus(s, target, now)
			return changed, err
		})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, httperr.ErrBusiness("session_not_found")
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			UserID:   &scope.UserID,
			Action:   "session_" + string(target),
			Entity:   "session",
			EntityID: &s.ID,
		})
	}

	return s, nil
}
