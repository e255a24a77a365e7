package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seller is a marketplace vendor. Sellers authenticate with email+password
// (bcrypt hash) and own the products they list.
type Seller struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreName    string    `json:"store_name" gorm:"not null;index"`
	Slug         string    `json:"slug" gorm:"not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	LogoURL      string    `json:"logo_url"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'Pending';check:status IN ('Pending', 'Active', 'Suspended')"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Seller) TableName() string {
	return "sellers"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SellerRegisterRequest struct {
	StoreName string `json:"store_name" binding:"required" example:"TechHub BD"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
}

type SellerLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SellerLoginResponse struct {
	Token  string  `json:"token"`
	Seller *Seller `json:"seller"`
}
