package calendar

import (
	"testing"
	"time"

	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domSession "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/models"
)

func at(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}

func testBooking(id uint, dogID uint, status string, start time.Time) models.Booking {
	return models.Booking{
		ID:          id,
		DogID:       dogID,
		BookingType: string(domBooking.TypeDogTraining),
		Status:      status,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
}

func testSession(id uint, dogID uint, status string, start time.Time) models.Session {
	return models.Session{
		ID:        id,
		DogID:     dogID,
		Status:    status,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestAggregateMergesBothSources(t *testing.T) {
	bookings := []models.Booking{testBooking(1, 10, "pending", at(5, 9))}
	sessions := []models.Session{testSession(2, 10, "scheduled", at(5, 11))}
	names := map[uint]string{10: "Rex"}

	events := Aggregate(bookings, sessions, FilterAll, names, time.UTC)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "booking-1" || events[1].ID != "session-2" {
		t.Fatalf("unexpected order: %s, %s", events[0].ID, events[1].ID)
	}
	if events[0].Title != "Rex - Dog Training" {
		t.Fatalf("unexpected booking title: %q", events[0].Title)
	}
	if events[1].Title != "Rex - Session" {
		t.Fatalf("unexpected session title: %q", events[1].Title)
	}
}

// A status filter matches each entity against its own vocabulary, so
// "confirmed" keeps no sessions and "scheduled" keeps no bookings.
func TestAggregateFilterUsesOwnVocabulary(t *testing.T) {
	bookings := []models.Booking{
		testBooking(1, 10, "pending", at(5, 9)),
		testBooking(2, 10, "confirmed", at(6, 9)),
	}
	sessions := []models.Session{
		testSession(3, 10, "scheduled", at(5, 10)),
		testSession(4, 10, "completed", at(6, 10)),
	}
	names := map[uint]string{10: "Rex"}

	confirmed := Aggregate(bookings, sessions, "confirmed", names, time.UTC)
	if len(confirmed) != 1 || confirmed[0].ID != "booking-2" {
		t.Fatalf("confirmed filter: expected only booking-2, got %v", confirmed)
	}

	scheduled := Aggregate(bookings, sessions, "scheduled", names, time.UTC)
	if len(scheduled) != 1 || scheduled[0].ID != "session-3" {
		t.Fatalf("scheduled filter: expected only session-3, got %v", scheduled)
	}

	all := Aggregate(bookings, sessions, FilterAll, names, time.UTC)
	if len(all) != 4 {
		t.Fatalf("all filter: expected 4 events, got %d", len(all))
	}
}

func TestAggregateSortsByDateTimeThenID(t *testing.T) {
	bookings := []models.Booking{
		testBooking(9, 10, "pending", at(7, 14)),
		testBooking(3, 10, "pending", at(7, 9)),
	}
	sessions := []models.Session{
		testSession(1, 10, "scheduled", at(7, 9)),
		testSession(5, 10, "scheduled", at(6, 18)),
	}

	events := Aggregate(bookings, sessions, FilterAll, nil, time.UTC)
	want := []string{"session-5", "booking-3", "session-1", "booking-9"}
	for i, id := range want {
		if events[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, events[i].ID)
		}
	}
}

func TestAggregateUnknownDogName(t *testing.T) {
	events := Aggregate(
		[]models.Booking{testBooking(1, 99, "pending", at(5, 9))},
		nil, FilterAll, map[uint]string{}, time.UTC,
	)
	if events[0].Title != "Unknown Dog - Dog Training" {
		t.Fatalf("expected fallback dog name, got %q", events[0].Title)
	}
}

func TestStatusColors(t *testing.T) {
	if got := BookingColor(domBooking.StatusPending); got != "bg-yellow-100 text-yellow-800 border-l-2 border-yellow-500" {
		t.Fatalf("pending booking color: %q", got)
	}
	if got := SessionColor(domSession.StatusInProgress); got != "bg-[rgb(0_32_96)] text-white border-l-2 border-[rgb(0_24_72)]" {
		t.Fatalf("in_progress session color: %q", got)
	}
	if got := BookingColor(domBooking.Status("bogus")); got != colorFallback {
		t.Fatalf("unknown status must fall back to gray, got %q", got)
	}
}

func TestGroupByDayEmitsEveryDayOfMonth(t *testing.T) {
	days := GroupByDay(nil, 2026, time.February, time.UTC, 3)
	if len(days) != 28 {
		t.Fatalf("February 2026 has 28 days, got %d", len(days))
	}
	for _, d := range days {
		if d.Events == nil {
			t.Fatalf("day %s: events must be an empty list, not nil", d.Date)
		}
		if d.More != 0 {
			t.Fatalf("day %s: empty day reported more=%d", d.Date, d.More)
		}
	}
	if days[0].Date != "2026-02-01" || days[27].Date != "2026-02-28" {
		t.Fatalf("unexpected day range: %s .. %s", days[0].Date, days[27].Date)
	}
}

func TestGroupByDayTruncatesBusyDays(t *testing.T) {
	var bookings []models.Booking
	for i := uint(1); i <= 5; i++ {
		bookings = append(bookings, testBooking(i, 10, "pending", at(12, 8+int(i))))
	}
	events := Aggregate(bookings, nil, FilterAll, nil, time.UTC)
	days := GroupByDay(events, 2026, time.March, time.UTC, 3)

	var busy Day
	for _, d := range days {
		if d.Date == "2026-03-12" {
			busy = d
		}
	}
	if len(busy.Events) != 3 {
		t.Fatalf("expected 3 visible events, got %d", len(busy.Events))
	}
	if busy.More != 2 {
		t.Fatalf("expected more=2, got %d", busy.More)
	}
	// Truncation keeps the earliest events.
	if busy.Events[0].ID != "booking-1" || busy.Events[2].ID != "booking-3" {
		t.Fatalf("truncation must keep the earliest events, got %s .. %s",
			busy.Events[0].ID, busy.Events[2].ID)
	}
}
