package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/middleware"
	"github.com/justdogsza/dog-training-api/internal/models"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}

func currentUserRole(c *gin.Context) models.Role {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(models.Role)
	return role
}

func currentScope(c *gin.Context) domBooking.Scope {
	return domBooking.Scope{
		UserID: currentUserID(c),
		Role:   currentUserRole(c),
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "The id in the URL is not valid.")
		return 0, false
	}
	return uint(id), true
}

// scopedQuery narrows a bookings/sessions-shaped query to what the caller
// may see: admins see everything, trainers and behaviorists their own
// schedule, parents their own dogs' records.
func scopedQuery(q *gorm.DB, scope domBooking.Scope) *gorm.DB {
	switch {
	case scope.All():
		return q
	case scope.Role.IsStaff():
		return q.Where("trainer_id = ?", scope.UserID)
	default:
		return q.Where("parent_id = ?", scope.UserID)
	}
}

var businessMessages = map[string]string{
	"invalid_transition":    "That status change is not allowed from the current status.",
	"booking_not_found":     "Booking not found.",
	"session_not_found":     "Session not found.",
	"dog_not_found":         "Dog not found.",
	"message_not_found":     "Message not found.",
	"trainer_not_found":     "Trainer not found.",
	"recipient_not_found":   "Recipient not found.",
	"invoice_not_found":     "Invoice not found.",
	"not_dog_owner":         "You can only book for your own dogs.",
	"not_message_recipient": "You are not the recipient of this message.",
	"booking_not_confirmed": "Only confirmed bookings can be turned into sessions.",
	"invalid_rating":        "Ratings must be between 1 and 5.",
	"invalid_time_range":    "The end time must be after the start time.",
	"missing_time":          "A start time is required.",
	"invalid_image":         "The uploaded file is not a supported image.",
}

// writeError maps business errors to their HTTP shape; anything else is a 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg, known := businessMessages[be.Code]
		if !known {
			msg = "The request could not be processed."
		}
		status := http.StatusBadRequest
		if strings.HasSuffix(be.Code, "_not_found") {
			status = http.StatusNotFound
		}
		httperr.Write(c, status, be.Code, msg)
		return
	}
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
