package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domSession "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

func TestMonthViewProjectsScopedEntities(t *testing.T) {
	repo := newTestRepo()
	repo.addDog(10, 3, "Rex")
	uc := NewMonthView(repo)
	ctx := context.Background()

	loc := timezone.Location("")
	start := time.Date(2026, 3, 12, 9, 0, 0, 0, loc)

	_ = repo.CreateBooking(ctx, &models.Booking{
		DogID: 10, TrainerID: 2, ParentID: 3,
		BookingType: string(domain.TypeDogTraining),
		Status:      string(domain.StatusPending),
		StartTime:   start, EndTime: start.Add(time.Hour),
	})
	_ = repo.CreateSession(ctx, &models.Session{
		DogID: 10, TrainerID: 2, ParentID: 3,
		Status:    string(domSession.StatusScheduled),
		StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour),
	})
	// Outside the month, must not appear.
	april := start.AddDate(0, 1, 0)
	_ = repo.CreateBooking(ctx, &models.Booking{
		DogID: 10, TrainerID: 2, ParentID: 3,
		BookingType: string(domain.TypeDogTraining),
		Status:      string(domain.StatusPending),
		StartTime:   april, EndTime: april.Add(time.Hour),
	})

	days, err := uc.Execute(ctx, domain.AdminScope(), 2026, 3, "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 31 {
		t.Fatalf("March has 31 days, got %d", len(days))
	}

	var total int
	for _, d := range days {
		total += len(d.Events)
		if d.Date == "2026-03-12" {
			if len(d.Events) != 2 {
				t.Fatalf("expected 2 events on the 12th, got %d", len(d.Events))
			}
			if d.Events[0].Title != "Rex - Dog Training" || d.Events[1].Title != "Rex - Session" {
				t.Fatalf("unexpected titles: %q / %q", d.Events[0].Title, d.Events[1].Title)
			}
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 events in March, got %d", total)
	}
}

func TestMonthViewScopesToParent(t *testing.T) {
	repo := newTestRepo()
	repo.addDog(10, 3, "Rex")
	repo.addDog(11, 4, "Bella")
	uc := NewMonthView(repo)
	ctx := context.Background()

	loc := timezone.Location("")
	start := time.Date(2026, 3, 5, 10, 0, 0, 0, loc)

	_ = repo.CreateBooking(ctx, &models.Booking{
		DogID: 10, TrainerID: 2, ParentID: 3,
		BookingType: string(domain.TypePetCare),
		Status:      string(domain.StatusConfirmed),
		StartTime:   start, EndTime: start.Add(time.Hour),
	})
	_ = repo.CreateBooking(ctx, &models.Booking{
		DogID: 11, TrainerID: 2, ParentID: 4,
		BookingType: string(domain.TypePetCare),
		Status:      string(domain.StatusConfirmed),
		StartTime:   start, EndTime: start.Add(time.Hour),
	})

	days, err := uc.Execute(ctx,
		domain.Scope{UserID: 3, Role: models.RoleParent}, 2026, 3, "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total int
	for _, d := range days {
		for _, ev := range d.Events {
			total++
			if ev.Title != "Rex - Pet Care" {
				t.Fatalf("parent must only see their own dog, got %q", ev.Title)
			}
		}
	}
	if total != 1 {
		t.Fatalf("expected 1 visible event, got %d", total)
	}
}

func TestMonthViewStatusFilter(t *testing.T) {
	repo := newTestRepo()
	repo.addDog(10, 3, "Rex")
	uc := NewMonthView(repo)
	ctx := context.Background()

	loc := timezone.Location("")
	start := time.Date(2026, 3, 20, 9, 0, 0, 0, loc)

	_ = repo.CreateBooking(ctx, &models.Booking{
		DogID: 10, TrainerID: 2, ParentID: 3,
		BookingType: string(domain.TypeDogTraining),
		Status:      string(domain.StatusPending),
		StartTime:   start, EndTime: start.Add(time.Hour),
	})
	_ = repo.CreateSession(ctx, &models.Session{
		DogID: 10, TrainerID: 2, ParentID: 3,
		Status:    string(domSession.StatusScheduled),
		StartTime: start, EndTime: start.Add(time.Hour),
	})

	days, err := uc.Execute(ctx, domain.AdminScope(), 2026, 3, "pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total int
	for _, d := range days {
		for _, ev := range d.Events {
			total++
			if ev.Type != "booking" {
				t.Fatalf("pending filter must only match bookings, got %s", ev.Type)
			}
		}
	}
	if total != 1 {
		t.Fatalf("expected 1 event, got %d", total)
	}
}
