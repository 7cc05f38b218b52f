package models

import "time"

// User represents a learner or an administrator
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Role         Role      `gorm:"not null;size:20;default:user" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Progress []Progress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}
