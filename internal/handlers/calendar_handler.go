package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justdogsza/dog-training-api/internal/domain/calendar"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/timezone"
	ucBooking "github.com/justdogsza/dog-training-api/internal/usecase/booking"
)

type CalendarHandler struct {
	monthView *ucBooking.MonthView
}

func NewCalendarHandler(monthView *ucBooking.MonthView) *CalendarHandler {
	return &CalendarHandler{monthView: monthView}
}

// Month serves GET /api/calendar?year=&month=&filter=. year and month
// default to the current month; filter defaults to "all".
func (h *CalendarHandler) Month(c *gin.Context) {
	now := timezone.Now()

	year := now.Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 2200 {
			httperr.BadRequest(c, "invalid_year", "year must be a valid year.")
			return
		}
		year = parsed
	}

	month := int(now.Month())
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			httperr.BadRequest(c, "invalid_month", "month must be between 1 and 12.")
			return
		}
		month = parsed
	}

	filter := c.DefaultQuery("filter", calendar.FilterAll)

	days, err := h.monthView.Execute(c.Request.Context(), currentScope(c), year, month, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
