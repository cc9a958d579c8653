package models

import "time"

// Session is the delivered instance of (usually) a Booking. BookingID is nil
// for ad-hoc sessions created without a booking.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint `json:"booking_id"`

	TrainerID uint `json:"trainer_id"`
	Trainer   User `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer"`

	ParentID uint `json:"parent_id"`
	Parent   User `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"parent"`

	DogID uint `json:"dog_id"`
	Dog   Dog  `gorm:"foreignKey:DogID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dog"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Notes          string     `gorm:"type:text" json:"notes"`
	ProgressRating *int       `json:"progress_rating"`
	BehaviorRating *int       `json:"behavior_rating"`
	Photos         StringList `gorm:"type:text" json:"photos"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
