package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domSession "github.com/justdogsza/dog-training-api/internal/domain/session"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/storage"
	ucSession "github.com/justdogsza/dog-training-api/internal/usecase/session"
)

type SessionHandler struct {
	db           *gorm.DB
	photos       *storage.PhotoStore
	realize      *ucSession.RealizeBooking
	create       *ucSession.CreateSession
	changeStatus *ucSession.ChangeSessionStatus
	feedback     *ucSession.RecordFeedback
}

func NewSessionHandler(
	db *gorm.DB,
	photos *storage.PhotoStore,
	realize *ucSession.RealizeBooking,
	create *ucSession.CreateSession,
	changeStatus *ucSession.ChangeSessionStatus,
	feedback *ucSession.RecordFeedback,
) *SessionHandler {
	return &SessionHandler{
		db:           db,
		photos:       photos,
		realize:      realize,
		create:       create,
		changeStatus: changeStatus,
		feedback:     feedback,
	}
}

// --------- Requests ---------

type RealizeBookingRequest struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     string    `json:"notes"`
}

type CreateSessionRequest struct {
	DogID     uint `json:"dog_id" binding:"required"`
	TrainerID uint `json:"trainer_id"`

	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`

	Notes string `json:"notes"`
}

type SessionFeedbackRequest struct {
	Notes          string `json:"notes"`
	ProgressRating *int   `json:"progress_rating"`
	BehaviorRating *int   `json:"behavior_rating"`
}

// --------- Handlers ---------

// Realize creates a scheduled session from a confirmed booking.
func (h *SessionHandler) Realize(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	var req RealizeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.realize.Execute(c.Request.Context(), currentScope(c),
		ucSession.RealizeBookingInput{
			BookingID: bookingID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Notes:     req.Notes,
		})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, s)
}

// Create registers an ad-hoc session with no backing booking.
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.create.Execute(c.Request.Context(), ucSession.CreateSessionInput{
		ActorID:   currentUserID(c),
		ActorRole: currentUserRole(c),
		DogID:     req.DogID,
		TrainerID: req.TrainerID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *SessionHandler) List(c *gin.Context) {
	q := scopedQuery(h.db.Model(&models.Session{}), currentScope(c))

	if status := c.Query("status"); status != "" {
		if _, ok := domSession.ParseStatus(status); !ok {
			httperr.BadRequest(c, "invalid_status", "Unknown session status.")
			return
		}
		q = q.Where("status = ?", status)
	}

	var sessions []models.Session
	err := q.Preload("Dog").Preload("Trainer").Preload("Parent").
		Order("start_time desc").
		Find(&sessions).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_sessions", "Could not list sessions.")
		return
	}

	httpresp.List(c, sessions)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var s models.Session
	err := scopedQuery(h.db.Model(&models.Session{}), currentScope(c)).
		Preload("Dog").Preload("Trainer").Preload("Parent").
		First(&s, id).Error
	if err != nil {
		httperr.NotFound(c, "session_not_found", "Session not found.")
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	target, ok := domSession.ParseStatus(req.Status)
	if !ok {
		httperr.BadRequest(c, "invalid_status", "Unknown session status.")
		return
	}

	s, err := h.changeStatus.Execute(c.Request.Context(), currentScope(c), id, target)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *SessionHandler) Feedback(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req SessionFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.feedback.Execute(c.Request.Context(), currentScope(c),
		ucSession.RecordFeedbackInput{
			SessionID:      id,
			Notes:          req.Notes,
			ProgressRating: req.ProgressRating,
			BehaviorRating: req.BehaviorRating,
		})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// UploadPhoto appends a progress photo to the session's gallery.
func (h *SessionHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		httperr.Unavailable(c, "photo_storage_disabled",
			"Photo storage is not configured.")
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	var s models.Session
	err := scopedQuery(h.db.Model(&models.Session{}), currentScope(c)).
		First(&s, id).Error
	if err != nil {
		httperr.NotFound(c, "session_not_found", "Session not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "The photo could not be read.")
		return
	}
	defer src.Close()

	url, err := h.photos.Upload(c.Request.Context(), src)
	if err != nil {
		writeError(c, err)
		return
	}

	s.Photos = append(s.Photos, url)
	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_update_session", "Could not save the photo URL.")
		return
	}

	c.JSON(http.StatusOK, s)
}
