package booking

import (
	"context"
	"time"

	domain "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/domain/calendar"
	"github.com/justdogsza/dog-training-api/internal/dto"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

// Up to this many events are shown inline per day cell; the rest collapse
// into a "+N more" indicator.
const maxEventsPerDay = 3

type MonthView struct {
	repo domain.Repository
}

func NewMonthView(
	repo domain.Repository,
) *MonthView {
	return &MonthView{
		repo: repo,
	}
}

// Execute projects the caller's bookings and sessions for one month onto the
// calendar grid. filter is "all" or an exact status from either vocabulary.
func (uc *MonthView) Execute(
	ctx context.Context,
	scope domain.Scope,
	year int,
	month int,
	filter string,
) ([]dto.CalendarDayDTO, error) {

	loc := timezone.Location("")

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, scope, start, end)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.repo.ListSessionsForPeriod(ctx, scope, start, end)
	if err != nil {
		return nil, err
	}

	dogIDs := make([]uint, 0, len(bookings)+len(sessions))
	for _, b := range bookings {
		dogIDs = append(dogIDs, b.DogID)
	}
	for _, s := range sessions {
		dogIDs = append(dogIDs, s.DogID)
	}

	dogNames, err := uc.repo.DogNames(ctx, dogIDs)
	if err != nil {
		return nil, err
	}

	events := calendar.Aggregate(bookings, sessions, filter, dogNames, loc)
	days := calendar.GroupByDay(events, year, time.Month(month), loc, maxEventsPerDay)

	out := make([]dto.CalendarDayDTO, 0, len(days))
	for _, d := range days {
		day := dto.CalendarDayDTO{
			Date:   d.Date,
			Events: make([]dto.CalendarEventDTO, 0, len(d.Events)),
			More:   d.More,
		}
		for _, ev := range d.Events {
			day.Events = append(day.Events, dto.CalendarEventDTO{
				ID:     ev.ID,
				Title:  ev.Title,
				Date:   ev.Date.Format("2006-01-02"),
				Type:   string(ev.Type),
				Status: ev.Status,
				Time:   ev.Time,
				Color:  ev.Color,
			})
		}
		out = append(out, day)
	}

	return out, nil
}
