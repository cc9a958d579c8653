package models

import "time"

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ParentID uint `json:"parent_id"`
	Parent   User `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"parent"`

	BookingID *uint `json:"booking_id"`

	// Amounts are stored in ZAR cents.
	AmountCents int64  `gorm:"not null" json:"amount_cents"`
	Currency    string `gorm:"size:3;default:'ZAR'" json:"currency"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	DueDate       time.Time `json:"due_date"`
	InvoiceNumber string    `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`
	Description   string    `gorm:"size:255" json:"description"`

	PaymentURL      string `gorm:"size:512" json:"payment_url"`
	PaymentProofURL string `gorm:"size:512" json:"payment_proof_url"`

	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
