package models

import "time"

type Dog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	Breed  string  `gorm:"size:100;not null" json:"breed"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`

	MedicalNotes    string `gorm:"type:text" json:"medical_notes"`
	BehavioralNotes string `gorm:"type:text" json:"behavioral_notes"`
	VaccineRecords  string `gorm:"type:text" json:"vaccine_records"`
	Preferences     string `gorm:"type:text" json:"preferences"`

	EmergencyContactName         string `gorm:"size:100" json:"emergency_contact_name"`
	EmergencyContactPhone        string `gorm:"size:20" json:"emergency_contact_phone"`
	EmergencyContactRelationship string `gorm:"size:50" json:"emergency_contact_relationship"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
