package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justdogsza/dog-training-api/internal/audit"
	"github.com/justdogsza/dog-training-api/internal/billing"
	"github.com/justdogsza/dog-training-api/internal/config"
	"github.com/justdogsza/dog-training-api/internal/handlers"
	infraRepo "github.com/justdogsza/dog-training-api/internal/infra/repository"
	"github.com/justdogsza/dog-training-api/internal/middleware"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/notify"
	"github.com/justdogsza/dog-training-api/internal/storage"
	ucBooking "github.com/justdogsza/dog-training-api/internal/usecase/booking"
	ucMessage "github.com/justdogsza/dog-training-api/internal/usecase/message"
	ucSession "github.com/justdogsza/dog-training-api/internal/usecase/session"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	hub *notify.Hub,
	photos *storage.PhotoStore,
	linker billing.PaymentLinker,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	messageRepo := infraRepo.NewMessageGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS & SESSIONS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	changeBookingStatusUC := ucBooking.NewChangeBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	monthViewUC := ucBooking.NewMonthView(
		bookingRepo,
	)

	realizeBookingUC := ucSession.NewRealizeBooking(
		bookingRepo,
		auditDispatcher,
	)

	createSessionUC := ucSession.NewCreateSession(
		bookingRepo,
		auditDispatcher,
	)

	changeSessionStatusUC := ucSession.NewChangeSessionStatus(
		bookingRepo,
		auditDispatcher,
	)

	recordFeedbackUC := ucSession.NewRecordFeedback(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — MESSAGES
	// ======================================================
	sendMessageUC := ucMessage.NewSendMessage(
		messageRepo,
		hub,
	)

	inboxUC := ucMessage.NewInbox(
		messageRepo,
	)

	markReadUC := ucMessage.NewMarkRead(
		messageRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	dogHandler := handlers.NewDogHandler(db, photos)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		changeBookingStatusUC,
	)

	sessionHandler := handlers.NewSessionHandler(
		db,
		photos,
		realizeBookingUC,
		createSessionUC,
		changeSessionStatusUC,
		recordFeedbackUC,
	)

	calendarHandler := handlers.NewCalendarHandler(monthViewUC)

	messageHandler := handlers.NewMessageHandler(
		messageRepo,
		hub,
		sendMessageUC,
		inboxUC,
		markReadUC,
	)

	invoiceHandler := handlers.NewInvoiceHandler(db, linker, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db, messageRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	staffOrAdmin := middleware.RequireRoles(
		models.RoleAdmin, models.RoleTrainer, models.RoleBehaviorist,
	)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			secured.GET("/users", adminOnly, userHandler.List)
			secured.GET("/trainers", userHandler.Trainers)

			// ------------------------------
			// DOGS
			// ------------------------------
			secured.GET("/dogs", dogHandler.List)
			secured.POST("/dogs", dogHandler.Create)
			secured.GET("/dogs/:id", dogHandler.Get)
			secured.PUT("/dogs/:id", dogHandler.Update)
			secured.DELETE("/dogs/:id", dogHandler.Delete)
			secured.POST("/dogs/:id/photo", dogHandler.UploadPhoto)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", staffOrAdmin, bookingHandler.ChangeStatus)
			secured.DELETE("/bookings/:id", adminOnly, bookingHandler.Delete)
			secured.POST("/bookings/:id/sessions", staffOrAdmin, sessionHandler.Realize)

			// ------------------------------
			// SESSIONS
			// ------------------------------
			secured.POST("/sessions", staffOrAdmin, sessionHandler.Create)
			secured.GET("/sessions", sessionHandler.List)
			secured.GET("/sessions/:id", sessionHandler.Get)
			secured.PATCH("/sessions/:id/status", staffOrAdmin, sessionHandler.ChangeStatus)
			secured.PATCH("/sessions/:id/feedback", staffOrAdmin, sessionHandler.Feedback)
			secured.POST("/sessions/:id/photos", staffOrAdmin, sessionHandler.UploadPhoto)

			// ------------------------------
			// CALENDAR
			// ------------------------------
			secured.GET("/calendar", calendarHandler.Month)

			// ------------------------------
			// MESSAGES
			// ------------------------------
			secured.POST("/messages", messageHandler.Send)
			secured.GET("/messages", messageHandler.List)
			secured.GET("/messages/unread", messageHandler.Unread)
			secured.PATCH("/messages/:id/read", messageHandler.MarkRead)
			secured.DELETE("/messages/:id", messageHandler.Delete)
			secured.GET("/messages/stream", messageHandler.Stream)

			// ------------------------------
			// INVOICES
			// ------------------------------
			secured.POST("/invoices", adminOnly, invoiceHandler.Create)
			secured.GET("/invoices", invoiceHandler.List)
			secured.GET("/invoices/:id", invoiceHandler.Get)
			secured.PATCH("/invoices/:id/status", adminOnly, invoiceHandler.ChangeStatus)

			// ------------------------------
			// DASHBOARD & AUDIT
			// ------------------------------
			secured.GET("/dashboard", dashboardHandler.Stats)
			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
