package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	users    map[uint]*models.User
	dogs     map[uint]*models.Dog
	bookings map[uint]*models.Booking
	sessions map[uint]*models.Session

	nextID uint
}

func newTestRepo() *testRepo {
	return &testRepo{
		users:    map[uint]*models.User{},
		dogs:     map[uint]*models.Dog{},
		bookings: map[uint]*models.Booking{},
		sessions: map[uint]*models.Session{},
	}
}

func (r *testRepo) addUser(id uint, role models.Role) *models.User {
	u := &models.User{ID: id, Role: role}
	r.users[id] = u
	return u
}

func (r *testRepo) addDog(id, ownerID uint, name string) *models.Dog {
	d := &models.Dog{ID: id, OwnerID: ownerID, Name: name}
	r.dogs[id] = d
	return d
}

func bookingInScope(b *models.Booking, scope domain.Scope) bool {
	switch {
	case scope.All():
		return true
	case scope.Role.IsStaff():
		return b.TrainerID == scope.UserID
	default:
		return b.ParentID == scope.UserID
	}
}

func sessionInScope(s *models.Session, scope domain.Scope) bool {
	switch {
	case scope.All():
		return true
	case scope.Role.IsStaff():
		return s.TrainerID == scope.UserID
	default:
		return s.ParentID == scope.UserID
	}
}

func (r *testRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) GetDog(ctx context.Context, id uint) (*models.Dog, error) {
	d, ok := r.dogs[id]
	if !ok {
		return nil, errRepoNotFound
	}
	return d, nil
}

func (r *testRepo) DogNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := map[uint]string{}
	for _, id := range ids {
		if d, ok := r.dogs[id]; ok {
			out[id] = d.Name
		}
	}
	return out, nil
}

func (r *testRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = b
	return nil
}

func (r *testRepo) GetBooking(ctx context.Context, id uint, scope domain.Scope) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || !bookingInScope(b, scope) {
		return nil, errRepoNotFound
	}
	return b, nil
}

func (r *testRepo) UpdateBooking(
	ctx context.Context,
	id uint,
	scope domain.Scope,
	apply func(*models.Booking) (bool, error),
) (*models.Booking, error) {
	b, err := r.GetBooking(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	changed, err := apply(b)
	if err != nil {
		return nil, err
	}
	if changed {
		b.UpdatedAt = time.Now()
	}
	return b, nil
}

func (r *testRepo) ListBookingsForPeriod(
	ctx context.Context,
	scope domain.Scope,
	start, end time.Time,
) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if !bookingInScope(b, scope) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *testRepo) CreateSession(ctx context.Context, s *models.Session) error {
	r.nextID++
	s.ID = r.nextID
	r.sessions[s.ID] = s
	return nil
}

func (r *testRepo) GetSession(ctx context.Context, id uint, scope domain.Scope) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok || !sessionInScope(s, scope) {
		return nil, errRepoNotFound
	}
	return s, nil
}

func (r *testRepo) UpdateSession(
	ctx context.Context,
	id uint,
	scope domain.Scope,
	apply func(*models.Session) (bool, error),
) (*models.Session, error) {
	s, err := r.GetSession(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	changed, err := apply(s)
	if err != nil {
		return nil, err
	}
	if changed {
		s.UpdatedAt = time.Now()
	}
	return s, nil
}

func (r *testRepo) ListSessionsForPeriod(
	ctx context.Context,
	scope domain.Scope,
	start, end time.Time,
) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if !sessionInScope(s, scope) {
			continue
		}
		if s.StartTime.Before(start) || !s.StartTime.Before(end) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

var _ domain.Repository = (*testRepo)(nil)
