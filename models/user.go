package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a storefront customer. Accounts are created on first Google OAuth
// sign-in, so there is no local password.
type User struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email      string     `json:"email" gorm:"not null;uniqueIndex"`
	Name       string     `json:"name" gorm:"not null"`
	AvatarURL  string     `json:"avatar_url"`
	GoogleSub  string     `json:"-" gorm:"uniqueIndex"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
