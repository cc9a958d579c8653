package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justdogsza/dog-training-api/internal/audit"
	"github.com/justdogsza/dog-training-api/internal/billing"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/httpresp"
	"github.com/justdogsza/dog-training-api/internal/models"
	"github.com/justdogsza/dog-training-api/internal/timezone"
)

// ======================================================
// STATUS MACHINE
// ======================================================

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

var invoiceTransitions = map[string][]string{
	InvoiceStatusPending: {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPaid, InvoiceStatusCancelled},
}

func invoiceCanTransition(from, to string) bool {
	for _, allowed := range invoiceTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	db      *gorm.DB
	billing billing.PaymentLinker
	audit   *audit.Dispatcher
}

func NewInvoiceHandler(db *gorm.DB, linker billing.PaymentLinker, audit *audit.Dispatcher) *InvoiceHandler {
	return &InvoiceHandler{db: db, billing: linker, audit: audit}
}

type CreateInvoiceRequest struct {
	ParentID    uint      `json:"parent_id" binding:"required"`
	BookingID   *uint     `json:"booking_id"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	Description string    `json:"description"`
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

func (h *InvoiceHandler) invoiceQuery(c *gin.Context) *gorm.DB {
	q := h.db.Model(&models.Invoice{})
	if currentUserRole(c) != models.RoleAdmin {
		q = q.Where("parent_id = ?", currentUserID(c))
	}
	return q
}

// Create is admin-only. A payment link is best-effort: failure to reach the
// payment provider leaves payment_url empty and the invoice still lands.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var parent models.User
	if err := h.db.First(&parent, req.ParentID).Error; err != nil {
		httperr.NotFound(c, "parent_not_found", "Parent not found.")
		return
	}
	if parent.Role != models.RoleParent {
		httperr.BadRequest(c, "not_a_parent", "Invoices can only be issued to parents.")
		return
	}

	inv := models.Invoice{
		ParentID:      req.ParentID,
		BookingID:     req.BookingID,
		AmountCents:   req.AmountCents,
		Currency:      "ZAR",
		Status:        InvoiceStatusPending,
		DueDate:       req.DueDate,
		InvoiceNumber: newInvoiceNumber(),
		Description:   req.Description,
	}

	if h.billing != nil {
		url, err := h.billing.PaymentLink(c.Request.Context(), &inv)
		if err != nil {
			log.Printf("billing: payment link for %s failed: %v", inv.InvoiceNumber, err)
		} else {
			inv.PaymentURL = url
		}
	}

	if err := h.db.Create(&inv).Error; err != nil {
		httperr.Internal(c, "failed_to_create_invoice", "Could not create the invoice.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	q := h.invoiceQuery(c)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := q.Preload("Parent").Order("due_date desc").Find(&invoices).Error; err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}

	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var inv models.Invoice
	if err := h.invoiceQuery(c).Preload("Parent").First(&inv, id).Error; err != nil {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}

	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req InvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var inv models.Invoice
	if err := h.db.First(&inv, id).Error; err != nil {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}

	if req.Status == inv.Status {
		c.JSON(http.StatusOK, inv)
		return
	}

	if !invoiceCanTransition(inv.Status, req.Status) {
		httperr.BadRequest(c, "invalid_transition",
			"That status change is not allowed from the current status.")
		return
	}

	inv.Status = req.Status
	if req.Status == InvoiceStatusPaid {
		now := timezone.Now()
		inv.PaidAt = &now
	}

	if err := h.db.Save(&inv).Error; err != nil {
		httperr.Internal(c, "failed_to_update_invoice", "Could not update the invoice.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "invoice_" + req.Status,
		Entity:   "invoice",
		EntityID: &inv.ID,
	})

	c.JSON(http.StatusOK, inv)
}
