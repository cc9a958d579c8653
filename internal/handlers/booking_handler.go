package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domBooking "github.com/justdogsza/dog-training-api/internal/domain/booking"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
	ucBooking "github.com/justdogsza/dog-training-api/internal/usecase/booking"
)

type BookingHandler struct {
	db           *gorm.DB
	create       *ucBooking.CreateBooking
	changeStatus *ucBooking.ChangeBookingStatus
}

func NewBookingHandler(
	db *gorm.DB,
	create *ucBooking.CreateBooking,
	changeStatus *ucBooking.ChangeBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		create:       create,
		changeStatus: changeStatus,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	DogID     uint `json:"dog_id" binding:"required"`
	TrainerID uint `json:"trainer_id" binding:"required"`

	BookingType   string `json:"booking_type" binding:"required"`
	TrainingLevel string `json:"training_level"`
	ConsultType   string `json:"consult_type"`

	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"`

	SpecialInstructions string `json:"special_instructions"`
	Location            string `json:"location"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ActorID:             currentUserID(c),
		ActorRole:           currentUserRole(c),
		DogID:               req.DogID,
		TrainerID:           req.TrainerID,
		BookingType:         req.BookingType,
		TrainingLevel:       req.TrainingLevel,
		ConsultType:         req.ConsultType,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SpecialInstructions: req.SpecialInstructions,
		Location:            req.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// List supports ?status= (exact) and ?query= over type, location and
// special instructions.
func (h *BookingHandler) List(c *gin.Context) {
	q := scopedQuery(h.db.Model(&models.Booking{}), currentScope(c))

	if status := c.Query("status"); status != "" {
		if _, ok := domBooking.ParseStatus(status); !ok {
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
			return
		}
		q = q.Where("status = ?", status)
	}

	if term := c.Query("query"); term != "" {
		like := "%" + term + "%"
		q = q.Where(
			"booking_type ILIKE ? OR location ILIKE ? OR special_instructions ILIKE ?",
			like, like, like,
		)
	}

	var bookings []models.Booking
	err := q.Preload("Dog").Preload("Trainer").Preload("Parent").
		Order("start_time desc").
		Find(&bookings).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var b models.Booking
	err := scopedQuery(h.db.Model(&models.Booking{}), currentScope(c)).
		Preload("Dog").Preload("Trainer").Preload("Parent").
		First(&b, id).Error
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	target, ok := domBooking.ParseStatus(req.Status)
	if !ok {
		httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
		return
	}

	b, err := h.changeStatus.Execute(c.Request.Context(), currentScope(c), id, target)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete the booking.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
