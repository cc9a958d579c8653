package booking

import (
	"context"
	"errors"

	"github.com/justdogsza/dog-training-api/internal/audit"
	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

type ChangeBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking to target under a row lock so concurrent status
// changes for the same booking serialize instead of losing updates.
func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	scope domain.Scope,
	bookingID uint,
	target domain.Status,
) (*models.Booking, error) {

	now := timezone.Now()

	var changed bool
	b, err := uc.repo.UpdateBooking(ctx, bookingID, scope,
		func(b *models.Booking) (bool, error) {
			var err error
			changed, err = domain.ChangeStatus(b, target, now)
			return changed, err
		})
	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			UserID:   &scope.UserID,
			Action:   "booking_" + string(target),
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}
