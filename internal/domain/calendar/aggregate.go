package calendar

import (
	"sort"
	"time"

	"github.com/justdogsza/dog-training-api/internal/models"
)

// FilterAll matches every status. Any other filter is an exact match against
// the entity's own status vocabulary, so "confirmed" can only ever match
// bookings and "scheduled" only sessions.
const FilterAll = "all"

// Aggregate projects bookings and sessions into a single event list. Events
// are sorted by day, then time, then id, which makes downstream per-day
// truncation deterministic.
func Aggregate(
	bookings []models.Booking,
	sessions []models.Session,
	filter string,
	dogNames map[uint]string,
	loc *time.Location,
) []Event {

	events := make([]Event, 0, len(bookings)+len(sessions))

	for _, b := range bookings {
		if filter != FilterAll && b.Status != filter {
			continue
		}
		events = append(events, BookingEvent(b, dogName(dogNames, b.DogID), loc))
	}

	for _, s := range sessions {
		if filter != FilterAll && s.Status != filter {
			continue
		}
		events = append(events, SessionEvent(s, dogName(dogNames, s.DogID), loc))
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].ID < events[j].ID
	})

	return events
}

func dogName(names map[uint]string, id uint) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "Unknown Dog"
}

// ===============================
// Month grid
// ===============================

// Day is one cell of the month grid. Events holds at most maxVisible entries;
// More counts the hidden remainder. A day with no events is present with an
// empty Events list, not absent.
type Day struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
	More   int     `json:"more"`
}

// GroupByDay lays a sorted event list onto every day of the given month.
func GroupByDay(
	events []Event,
	year int,
	month time.Month,
	loc *time.Location,
	maxVisible int,
) []Day {

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	byDay := make(map[string][]Event)
	for _, ev := range events {
		key := ev.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], ev)
	}

	var days []Day
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		evs := byDay[key]

		day := Day{Date: key, Events: []Event{}}
		if len(evs) > maxVisible {
			day.Events = evs[:maxVisible]
			day.More = len(evs) - maxVisible
		} else if len(evs) > 0 {
			day.Events = evs
		}
		days = append(days, day)
	}

	return days
}
