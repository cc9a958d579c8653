package session

import (
	"context"
	"errors"
	"time"

	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
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

func (r *testRepo) addUser(id uint, role models.Role) {
	r.users[id] = &models.User{ID: id, Role: role}
}

func (r *testRepo) addDog(id, ownerID uint, name string) {
	r.dogs[id] = &models.Dog{ID: id, OwnerID: ownerID, Name: name}
}

func (r *testRepo) addBooking(b *models.Booking) *models.Booking {
	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = b
	return b
}

func bookingInScope(b *models.Booking, scope domBooking.Scope) bool {
	switch {
	case scope.All():
		return true
	case scope.Role.IsStaff():
		return b.TrainerID == scope.UserID
	default:
		return b.ParentID == scope.UserID
	}
}

func sessionInScope(s *models.Session, scope domBooking.Scope) bool {
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
	r.addBooking(b)
	return nil
}

func (r *testRepo) GetBooking(ctx context.Context, id uint, scope domBooking.Scope) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || !bookingInScope(b, scope) {
		return nil, errRepoNotFound
	}
	return b, nil
}

func (r *testRepo) UpdateBooking(
	ctx context.Context,
	id uint,
	scope domBooking.Scope,
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
	scope domBooking.Scope,
	start, end time.Time,
) ([]models.Booking, error) {
	return nil, nil
}

func (r *testRepo) CreateSession(ctx context.Context, s *models.Session) error {
	r.nextID++
	s.ID = r.nextID
	r.sessions[s.ID] = s
	return nil
}

func (r *testRepo) GetSession(ctx context.Context, id uint, scope domBooking.Scope) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok || !sessionInScope(s, scope) {
		return nil, errRepoNotFound
	}
	return s, nil
}

func (r *testRepo) UpdateSession(
	ctx context.Context,
	id uint,
	scope domBooking.Scope,
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
	scope domBooking.Scope,
	start, end time.Time,
) ([]models.Session, error) {
	return nil, nil
}

var _ domBooking.Repository = (*testRepo)(nil)
