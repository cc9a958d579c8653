package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Scoping
// --------------------------------------------------

func bookingScope(scope domain.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case scope.All():
			return db
		case scope.Role.IsStaff():
			return db.Where("trainer_id = ?", scope.UserID)
		default:
			return db.Where("parent_id = ?", scope.UserID)
		}
	}
}

// sessions carry the same trainer/parent columns, so the same rule applies
var sessionScope = bookingScope

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetDog(
	ctx context.Context,
	id uint,
) (*models.Dog, error) {

	var dog models.Dog
	if err := r.db.WithContext(ctx).First(&dog, id).Error; err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *BookingGormRepository) DogNames(
	ctx context.Context,
	ids []uint,
) (map[uint]string, error) {

	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var dogs []models.Dog
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&dogs).Error; err != nil {
		return nil, err
	}

	for _, d := range dogs {
		names[d.ID] = d.Name
	}
	return names, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
	scope domain.Scope,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Scopes(bookingScope(scope)).
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	id uint,
	scope domain.Scope,
	apply func(*models.Booking) (bool, error),
) (*models.Booking, error) {

	var out *models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(bookingScope(scope)).
			First(&b, id).Error; err != nil {
			return err
		}

		changed, err := apply(&b)
		if err != nil {
			return err
		}

		if changed {
			if err := tx.Save(&b).Error; err != nil {
				return err
			}
		}

		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	scope domain.Scope,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Scopes(bookingScope(scope)).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Session
// --------------------------------------------------

func (r *BookingGormRepository) CreateSession(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *BookingGormRepository) GetSession(
	ctx context.Context,
	id uint,
	scope domain.Scope,
) (*models.Session, error) {

	var s models.Session
	if err := r.db.WithContext(ctx).
		Scopes(sessionScope(scope)).
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BookingGormRepository) UpdateSession(
	ctx context.Context,
	id uint,
	scope domain.Scope,
	apply func(*models.Session) (bool, error),
) (*models.Session, error) {

	var out *models.Session

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var s models.Session
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(sessionScope(scope)).
			First(&s, id).Error; err != nil {
			return err
		}

		changed, err := apply(&s)
		if err != nil {
			return err
		}

		if changed {
			if err := tx.Save(&s).Error; err != nil {
				return err
			}
		}

		out = &s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *BookingGormRepository) ListSessionsForPeriod(
	ctx context.Context,
	scope domain.Scope,
	start time.Time,
	end time.Time,
) ([]models.Session, error) {

	var sessions []models.Session
	if err := r.db.WithContext(ctx).
		Scopes(sessionScope(scope)).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
