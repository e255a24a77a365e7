package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary" binding:"required"`
	Other   []MediaURL `json:"other,omitempty"`
}

// TagsList is a jsonb string array (deal tags, delivery modes).
type TagsList []string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string       `json:"name" gorm:"not null;index"`
	Slug          string       `json:"slug" gorm:"not null;uniqueIndex"`
	Description   string       `json:"description" gorm:"not null"`
	Price         float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	SalePrice     *float64     `json:"sale_price,omitempty" gorm:"type:numeric(12,2)"`
	IsDiscount    bool         `json:"is_discount" gorm:"not null;default:false"`
	Discount      *int         `json:"discount,omitempty" gorm:"check:discount >= 0 AND discount <= 100"`
	IsFeatured    bool         `json:"is_featured" gorm:"not null;default:false;index:idx_products_listing,priority:1,sort:desc"`
	Rating        float64      `json:"rating" gorm:"type:numeric(3,2);not null;default:0"`
	BrandID       *uuid.UUID   `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	Brand         *Brand       `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
	SellerID      uuid.UUID    `json:"seller_id" gorm:"type:uuid;not null;index"`
	Seller        *Seller      `json:"seller,omitempty" gorm:"foreignKey:SellerID;references:ID"`
	SubCategoryID uuid.UUID    `json:"sub_category_id" gorm:"type:uuid;not null;index:idx_products_subcategory"`
	SubCategory   *Category    `json:"sub_category,omitempty" gorm:"foreignKey:SubCategoryID;references:ID"`
	Status        string       `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	DealTags      TagsList     `json:"deal_tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	DeliveryModes TagsList     `json:"delivery_modes" gorm:"type:jsonb;not null;default:'[]'"`
	Media         ProductMedia `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Stock         int          `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	Views         int          `json:"views" gorm:"default:0"`
	CreatedAt     time.Time    `json:"created_at" gorm:"autoCreateTime;index:idx_products_listing,priority:2,sort:desc"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Reviews       []Review     `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// Review is a customer product review; the storefront only ever surfaces the
// count and the aggregate rating.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	Stars     int       `json:"stars" gorm:"not null;check:stars BETWEEN 1 AND 5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name          string     `json:"name" binding:"required" example:"Walton Primo S9"`
	Description   string     `json:"description" binding:"required"`
	Price         float64    `json:"price" binding:"required,min=0" example:"21999"`
	SalePrice     *float64   `json:"sale_price" binding:"omitempty,min=0"`
	IsDiscount    bool       `json:"is_discount"`
	Discount      *int       `json:"discount" binding:"omitempty,min=0,max=100"`
	BrandID       *uuid.UUID `json:"brand_id"`
	SubCategoryID uuid.UUID  `json:"sub_category_id" binding:"required"`
	Status        string     `json:"status" binding:"required,oneof=Active Draft" example:"Draft"`
	DealTags      []string   `json:"deal_tags"`
	DeliveryModes []string   `json:"delivery_modes"`
	Stock         int        `json:"stock" binding:"min=0"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m ProductMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
