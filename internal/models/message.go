package models

import "time"

// Message is a direct message when RecipientID is set, otherwise an
// announcement. Announcements with an empty TargetRoles list are visible to
// every role.
type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderID uint `json:"sender_id"`
	Sender   User `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sender"`

	RecipientID *uint `json:"recipient_id"`

	Subject string `gorm:"size:255;not null" json:"subject"`
	Content string `gorm:"type:text;not null" json:"content"`

	IsAnnouncement bool     `json:"is_announcement"`
	TargetRoles    RoleList `gorm:"type:text" json:"target_roles"`

	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
