package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domMessage "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

// DashboardHandler shapes the stats payload to the caller's role rather than
// exposing one flat counter set to everyone.
type DashboardHandler struct {
	db       *gorm.DB
	messages domMessage.Repository
}

func NewDashboardHandler(db *gorm.DB, messages domMessage.Repository) *DashboardHandler {
	return &DashboardHandler{db: db, messages: messages}
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	now := timezone.Now()

	switch role := currentUserRole(c); role {
	case models.RoleAdmin:
		h.adminStats(c, now)
	case models.RoleTrainer, models.RoleBehaviorist:
		h.trainerStats(c, now)
	default:
		h.parentStats(c, now)
	}
}

func (h *DashboardHandler) adminStats(c *gin.Context, now time.Time) {
	dayStart, dayEnd := dayBounds(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var bookingsToday, totalDogs, totalTrainers, pendingBookings int64
	h.db.Model(&models.Booking{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Count(&bookingsToday)
	h.db.Model(&models.Dog{}).Count(&totalDogs)
	h.db.Model(&models.User{}).
		Where("role IN ?", []models.Role{models.RoleTrainer, models.RoleBehaviorist}).
		Count(&totalTrainers)
	h.db.Model(&models.Booking{}).Where("status = ?", "pending").Count(&pendingBookings)

	var revenueCents int64
	h.db.Model(&models.Invoice{}).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", InvoiceStatusPaid, monthStart, monthEnd).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&revenueCents)

	c.JSON(http.StatusOK, gin.H{
		"total_bookings_today": bookingsToday,
		"total_dogs":           totalDogs,
		"total_trainers":       totalTrainers,
		"total_revenue_month":  revenueCents,
		"pending_bookings":     pendingBookings,
	})
}

func (h *DashboardHandler) trainerStats(c *gin.Context, now time.Time) {
	userID := currentUserID(c)
	dayStart, dayEnd := dayBounds(now)

	var todaySessions, dogsAssigned, upcoming int64
	h.db.Model(&models.Session{}).
		Where("trainer_id = ? AND start_time >= ? AND start_time < ?", userID, dayStart, dayEnd).
		Count(&todaySessions)
	h.db.Model(&models.Session{}).
		Where("trainer_id = ?", userID).
		Distinct("dog_id").
		Count(&dogsAssigned)
	h.db.Model(&models.Session{}).
		Where("trainer_id = ? AND start_time >= ? AND status = ?", userID, now, "scheduled").
		Count(&upcoming)

	unread, err := h.messages.ListUnread(c.Request.Context(), userID, currentUserRole(c))
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_sessions":      todaySessions,
		"total_dogs_assigned": dogsAssigned,
		"unread_messages":     len(unread),
		"upcoming_sessions":   upcoming,
	})
}

func (h *DashboardHandler) parentStats(c *gin.Context, now time.Time) {
	userID := currentUserID(c)

	var totalDogs, upcoming int64
	h.db.Model(&models.Dog{}).Where("owner_id = ?", userID).Count(&totalDogs)
	h.db.Model(&models.Session{}).
		Where("parent_id = ? AND start_time >= ? AND status = ?", userID, now, "scheduled").
		Count(&upcoming)

	unread, err := h.messages.ListUnread(c.Request.Context(), userID, currentUserRole(c))
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_dogs":        totalDogs,
		"upcoming_sessions": upcoming,
		"unread_messages":   len(unread),
	})
}
