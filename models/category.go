package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one node of the two-level catalog hierarchy. Parents have a
// nil ParentID; products always hang off a sub-category. The slug is the
// URL scope for listing pages.
type Category struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"not null;uniqueIndex"`
	Description string     `json:"description"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')"`
	ParentID    *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	ParentName  *string    `json:"parent_name" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterUpdate hook - keep children's denormalized parent_name in sync
func (c *Category) AfterUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Name") {
		return tx.Model(&Category{}).
			Where("parent_id = ?", c.ID).
			Update("parent_name", c.Name).Error
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// CategoryNode is the tree shape served to the storefront navigation:
// parents with children and per-node product counts.
type CategoryNode struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	ProductCount int            `json:"product_count"`
	Children     []CategoryNode `json:"children,omitempty"`
}

// BreadcrumbItem is one link of the trail above a listing page.
type BreadcrumbItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}
