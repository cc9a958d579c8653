package session

import (
	"context"
	"time"

	"github.com/justdogsza/dog-training-api/internal/audit"
	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domain "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type CreateSessionInput struct {
	ActorID   uint
	ActorRole models.Role

	DogID     uint
	TrainerID uint

	StartTime time.Time
	EndTime   time.Time

	Notes string
}

// CreateSession creates an ad-hoc session with no backing booking, e.g. a
// walk-in assessment.
type CreateSession struct {
	repo  domBooking.Repository
	audit *audit.Dispatcher
}

func NewCreateSession(
	repo domBooking.Repository,
	audit *audit.Dispatcher,
) *CreateSession {
	return &CreateSession{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSession) Execute(
	ctx context.Context,
	in CreateSessionInput,
) (*models.Session, error) {

	if err := domBooking.ValidateTimes(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	dog, err := uc.repo.GetDog(ctx, in.DogID)
	if err != nil {
		return nil, httperr.ErrBusiness("dog_not_found")
	}

	trainerID := in.TrainerID
	if trainerID == 0 && in.ActorRole.IsStaff() {
		trainerID = in.ActorID
	}
	trainer, err := uc.repo.GetUser(ctx, trainerID)
	if err != nil {
		return nil, httperr.ErrBusiness("trainer_not_found")
	}
	if !trainer.Role.IsStaff() {
		return nil, httperr.ErrBusiness("not_a_trainer")
	}

	s := &models.Session{
		TrainerID: trainer.ID,
		ParentID:  dog.OwnerID,
		DogID:     dog.ID,
		Status:    string(domain.InitialStatus()),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateSession(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "session_created",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
