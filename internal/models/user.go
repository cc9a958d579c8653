package models

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleTrainer     Role = "trainer"
	RoleParent      Role = "parent"
	RoleBehaviorist Role = "behaviorist"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleTrainer, RoleParent, RoleBehaviorist:
		return Role(s), true
	}
	return "", false
}

// IsStaff reports whether the role can be assigned to bookings as the
// delivering professional.
func (r Role) IsStaff() bool {
	return r == RoleTrainer || r == RoleBehaviorist
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Role         Role   `gorm:"size:20;default:'parent'" json:"role"`
	Phone        string `gorm:"size:20" json:"phone"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
