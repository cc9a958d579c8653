package booking

import (
	"context"
	"time"

	"github.com/justdogsza/dog-training-api/internal/audit"
	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ActorID   uint
	ActorRole models.Role

	DogID     uint
	TrainerID uint

	BookingType   string
	TrainingLevel string
	ConsultType   string

	StartTime time.Time
	EndTime   time.Time

	SpecialInstructions string
	Location            string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	btype, ok := domain.ParseType(in.BookingType)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_booking_type")
	}
	svc, _ := domain.ServiceFor(btype)

	if in.TrainingLevel != "" {
		if !svc.RequiresLevel {
			return nil, httperr.ErrBusiness("invalid_training_level")
		}
		if _, ok := domain.ParseTrainingLevel(in.TrainingLevel); !ok {
			return nil, httperr.ErrBusiness("invalid_training_level")
		}
	}

	if in.ConsultType != "" {
		if !svc.RequiresConsultType {
			return nil, httperr.ErrBusiness("invalid_consult_type")
		}
		if _, ok := domain.ParseConsultType(in.ConsultType); !ok {
			return nil, httperr.ErrBusiness("invalid_consult_type")
		}
	}

	// End time defaults to the catalog duration of the service.
	end := in.EndTime
	if end.IsZero() && !in.StartTime.IsZero() {
		end = in.StartTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	}
	if err := domain.ValidateTimes(in.StartTime, end); err != nil {
		return nil, err
	}

	dog, err := uc.repo.GetDog(ctx, in.DogID)
	if err != nil {
		return nil, httperr.ErrBusiness("dog_not_found")
	}

	// Parents can only book their own dogs; admins book on behalf of the
	// dog's owner.
	if in.ActorRole == models.RoleParent && dog.OwnerID != in.ActorID {
		return nil, httperr.ErrBusiness("not_dog_owner")
	}

	trainer, err := uc.repo.GetUser(ctx, in.TrainerID)
	if err != nil {
		return nil, httperr.ErrBusiness("trainer_not_found")
	}
	if !trainer.Role.IsStaff() {
		return nil, httperr.ErrBusiness("not_a_trainer")
	}

	b := &models.Booking{
		DogID:               dog.ID,
		TrainerID:           trainer.ID,
		ParentID:            dog.OwnerID,
		BookingType:         string(btype),
		TrainingLevel:       in.TrainingLevel,
		ConsultType:         in.ConsultType,
		StartTime:           in.StartTime,
		EndTime:             end,
		Status:              string(domain.InitialStatus()),
		SpecialInstructions: in.SpecialInstructions,
		Location:            in.Location,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
