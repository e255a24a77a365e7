package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a complete customer order. The shipping address is
// snapshotted onto the order at checkout so later address edits never
// rewrite history.
type Order struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber     string     `json:"order_number" gorm:"not null;uniqueIndex"`
	ShippingAddress string     `json:"shipping_address" gorm:"not null"`
	PaymentMethod   string     `json:"payment_method" gorm:"not null;check:payment_method IN ('cod', 'bkash', 'nagad', 'card')"`
	Subtotal        float64    `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	ShippingCost    float64    `json:"shipping_cost" gorm:"type:numeric(12,2);not null;default:0"`
	Discount        float64    `json:"discount" gorm:"type:numeric(12,2);not null;default:0"`
	TotalAmount     float64    `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status          string     `json:"status" gorm:"not null;default:'pending';check:status IN ('pending', 'confirmed', 'shipped', 'delivered', 'cancelled')"`
	CustomerNotes   *string    `json:"customer_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line in an order. Name and price are copied from
// the product at checkout time.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	SellerID    uuid.UUID `json:"seller_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type CreateOrderRequest struct {
	ShippingAddress string           `json:"shipping_address" binding:"required"`
	PaymentMethod   string           `json:"payment_method" binding:"required,oneof=cod bkash nagad card"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	CustomerNotes   *string          `json:"customer_notes,omitempty"`
}

type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// OrderSummary is the order-history list row.
type OrderSummary struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}
