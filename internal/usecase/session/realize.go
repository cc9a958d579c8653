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

// ======================================================
// INPUT
// ======================================================

type RealizeBookingInput struct {
	BookingID uint

	// Optional overrides; default to the booking's own times.
	StartTime time.Time
	EndTime   time.Time

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// RealizeBooking turns a confirmed booking into a scheduled session carrying
// the booking's dog, trainer and parent.
type RealizeBooking struct {
	repo  domBooking.Repository
	audit *audit.Dispatcher
}

func NewRealizeBooking(
	repo domBooking.Repository,
	audit *audit.Dispatcher,
) *RealizeBooking {
	return &RealizeBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RealizeBooking) Execute(
	ctx context.Context,
	scope domBooking.Scope,
	in RealizeBookingInput,
) (*models.Session, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID, scope)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if domBooking.Status(b.Status) != domBooking.StatusConfirmed {
		return nil, httperr.ErrBusiness("booking_not_confirmed")
	}

	start := in.StartTime
	if start.IsZero() {
		start = b.StartTime
	}
	end := in.EndTime
	if end.IsZero() {
		end = b.EndTime
	}
	if err := domBooking.ValidateTimes(start, end); err != nil {
		return nil, err
	}

	bookingID := b.ID
	s := &models.Session{
		BookingID: &bookingID,
		TrainerID: b.TrainerID,
		ParentID:  b.ParentID,
		DogID:     b.DogID,
		Status:    string(domain.InitialStatus()),
		StartTime: start,
		EndTime:   end,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateSession(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &scope.UserID,
		Action:   "session_created",
		Entity:   "session",
		EntityID: &s.ID,
	})

	return s, nil
}
