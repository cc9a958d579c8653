package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DogID uint `json:"dog_id"`
	Dog   Dog  `gorm:"foreignKey:DogID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dog"`

	TrainerID uint `json:"trainer_id"`
	Trainer   User `gorm:"foreignKey:TrainerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer"`

	ParentID uint `json:"parent_id"`
	Parent   User `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"parent"`

	BookingType   string `gorm:"size:30;not null" json:"booking_type"`
	TrainingLevel string `gorm:"size:20" json:"training_level"`
	ConsultType   string `gorm:"size:20" json:"consult_type"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	SpecialInstructions string `gorm:"size:255" json:"special_instructions"`
	Location            string `gorm:"size:255" json:"location"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
