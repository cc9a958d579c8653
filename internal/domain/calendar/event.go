package calendar

import (
	"fmt"
	"time"

	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	domSession "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// ===============================
// Calendar Event (derived view)
// ===============================

type EventType string

const (
	EventBooking EventType = "booking"
	EventSession EventType = "session"
)

// Event is a non-persisted projection of a booking or session onto a single
// calendar day. It is rebuilt on every request.
type Event struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Type   EventType `json:"type"`
	Status string    `json:"status"`
	Time   string    `json:"time"`
	Color  string    `json:"color"`
}

// ===============================
// Status color tables
// ===============================

// The class strings are the contract the web client styles events with.
// Booking and session statuses keep separate tables.

const colorFallback = "bg-gray-100 text-gray-800 border-l-2 border-gray-500"

var bookingColors = map[domBooking.Status]string{
	domBooking.StatusPending:   "bg-yellow-100 text-yellow-800 border-l-2 border-yellow-500",
	domBooking.StatusConfirmed: "bg-blue-100 text-blue-800 border-l-2 border-blue-500",
	domBooking.StatusCompleted: "bg-green-100 text-green-800 border-l-2 border-green-500",
	domBooking.StatusCancelled: "bg-red-100 text-red-800 border-l-2 border-red-500",
}

var sessionColors = map[domSession.Status]string{
	domSession.StatusScheduled:  "bg-[rgb(0_32_96)] bg-opacity-10 text-[rgb(0_32_96)] border-l-2 border-[rgb(0_32_96)]",
	domSession.StatusInProgress: "bg-[rgb(0_32_96)] text-white border-l-2 border-[rgb(0_24_72)]",
	domSession.StatusCompleted:  "bg-green-100 text-green-800 border-l-2 border-green-500",
	domSession.StatusCancelled:  "bg-red-100 text-red-800 border-l-2 border-red-500",
}

func BookingColor(status domBooking.Status) string {
	if c, ok := bookingColors[status]; ok {
		return c
	}
	return colorFallback
}

func SessionColor(status domSession.Status) string {
	if c, ok := sessionColors[status]; ok {
		return c
	}
	return colorFallback
}

// ===============================
// Builders
// ===============================

func BookingEvent(b models.Booking, dogName string, loc *time.Location) Event {
	start := b.StartTime.In(loc)
	return Event{
		ID:     fmt.Sprintf("booking-%d", b.ID),
		Title:  fmt.Sprintf("%s - %s", dogName, domBooking.Type(b.BookingType).Label()),
		Date:   truncateToDay(start),
		Type:   EventBooking,
		Status: b.Status,
		Time:   start.Format("15:04"),
		Color:  BookingColor(domBooking.Status(b.Status)),
	}
}

func SessionEvent(s models.Session, dogName string, loc *time.Location) Event {
	start := s.StartTime.In(loc)
	return Event{
		ID:     fmt.Sprintf("session-%d", s.ID),
		Title:  fmt.Sprintf("%s - Session", dogName),
		Date:   truncateToDay(start),
		Type:   EventSession,
		Status: s.Status,
		Time:   start.Format("15:04"),
		Color:  SessionColor(domSession.Status(s.Status)),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
