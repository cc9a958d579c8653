package booking

import (
	"context"
	"time"

	"github.com/justdogsza/dog-training-api/internal/models"
)

// Scope restricts reads and writes to what the acting user may see: parents
// their own bookings, trainers and behaviorists their assigned ones, admins
// everything.
type Scope struct {
	UserID uint
	Role   models.Role
}

func (s Scope) All() bool {
	return s.Role == models.RoleAdmin
}

func AdminScope() Scope {
	return Scope{Role: models.RoleAdmin}
}

type Repository interface {
	// -------- Lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetDog(
		ctx context.Context,
		id uint,
	) (*models.Dog, error)

	DogNames(
		ctx context.Context,
		ids []uint,
	) (map[uint]string, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
		scope Scope,
	) (*models.Booking, error)

	// UpdateBooking loads the booking under a row lock, applies the mutation
	// and saves it only when apply reports a change.
	UpdateBooking(
		ctx context.Context,
		id uint,
		scope Scope,
		apply func(*models.Booking) (bool, error),
	) (*models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		scope Scope,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Session --------
	CreateSession(
		ctx context.Context,
		s *models.Session,
	) error

	GetSession(
		ctx context.Context,
		id uint,
		scope Scope,
	) (*models.Session, error)

	UpdateSession(
		ctx context.Context,
		id uint,
		scope Scope,
		apply func(*models.Session) (bool, error),
	) (*models.Session, error)

	ListSessionsForPeriod(
		ctx context.Context,
		scope Scope,
		start time.Time,
		end time.Time,
	) ([]models.Session, error)
}
