package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Orders above this subtotal ship free, everything else pays a flat fee.
const (
	freeShippingThreshold = 1000.0
	flatShippingCost      = 60.0
)

var resendClient *services.ResendClient

// InitOrderController creates the shared email client. Called once from main.
func InitOrderController() {
	resendClient = services.NewResendClient()
}

func generateOrderNumber() string {
	suffix := uuid.Must(uuid.NewV7()).String()
	return fmt.Sprintf("BWH-%s-%s", time.Now().Format("20060102"), suffix[len(suffix)-6:])
}

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Create a new order from cart items. Prices are read from the catalog at checkout time, never trusted from the client.
// @Tags Customer - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.ApiResponse "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	userIDStr, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	var items []models.OrderItem

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := make([]uuid.UUID, len(req.Items))
		for i, item := range req.Items {
			productIDs[i] = item.ProductID
		}

		// Current prices come from the catalog, not the request
		var products []struct {
			ID        uuid.UUID `gorm:"column:id"`
			SellerID  uuid.UUID `gorm:"column:seller_id"`
			Name      string    `gorm:"column:name"`
			Price     float64   `gorm:"column:price"`
			SalePrice *float64  `gorm:"column:sale_price"`
			Stock     int       `gorm:"column:stock"`
		}
		if err := tx.Table("products").
			Select("id, seller_id, name, price, sale_price, stock").
			Where("id IN ? AND status = 'Active'", productIDs).
			Find(&products).Error; err != nil {
			return fmt.Errorf("failed to validate products")
		}

		byID := make(map[uuid.UUID]int, len(products))
		for i, p := range products {
			byID[p.ID] = i
		}

		var subtotal float64
		items = items[:0]
		for _, line := range req.Items {
			idx, ok := byID[line.ProductID]
			if !ok {
				return fmt.Errorf("product %s not found or inactive", line.ProductID)
			}
			p := products[idx]
			if p.Stock < line.Quantity {
				return fmt.Errorf("insufficient stock for %s", p.Name)
			}

			unitPrice := p.Price
			if p.SalePrice != nil {
				unitPrice = *p.SalePrice
			}
			lineSubtotal := unitPrice * float64(line.Quantity)
			subtotal += lineSubtotal

			items = append(items, models.OrderItem{
				ProductID:   p.ID,
				SellerID:    p.SellerID,
				ProductName: p.Name,
				UnitPrice:   unitPrice,
				Quantity:    line.Quantity,
				Subtotal:    lineSubtotal,
			})
		}

		shippingCost := flatShippingCost
		if subtotal >= freeShippingThreshold {
			shippingCost = 0
		}

		order = models.Order{
			UserID:          userID,
			OrderNumber:     generateOrderNumber(),
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Subtotal:        subtotal,
			ShippingCost:    shippingCost,
			Discount:        0,
			TotalAmount:     subtotal + shippingCost,
			Status:          "pending",
			CustomerNotes:   req.CustomerNotes,
		}

		if err := tx.Create(&order).Error; err != nil {
			log.Printf("❌ Failed to create order: %v", err)
			return fmt.Errorf("failed to create order")
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			log.Printf("❌ Failed to create order items: %v", err)
			return fmt.Errorf("failed to create order items")
		}

		// Reserve stock inside the same transaction
		for _, item := range items {
			result := tx.Exec(`
				UPDATE products
				SET stock = stock - ?
				WHERE id = ? AND stock >= ?`,
				item.Quantity, item.ProductID, item.Quantity,
			)
			if result.Error != nil {
				return fmt.Errorf("failed to reserve stock")
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for %s", item.ProductName)
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("✅ Order created: %s for user: %s - Total: BDT %.2f",
		order.OrderNumber, userID, order.TotalAmount)

	// Invoice email is best-effort and must not block checkout
	go sendInvoiceEmail(order, items, userID)

	c.JSON(http.StatusCreated, models.SuccessResponse(
		c,
		"Order created successfully",
		gin.H{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"total_amount": order.TotalAmount,
		},
	))
}

func sendInvoiceEmail(order models.Order, items []models.OrderItem, userID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer struct {
		Email string
		Name  string
	}
	if err := config.Gorm.WithContext(ctx).
		Table("users").
		Select("email, name").
		Where("id = ?", userID).
		Scan(&customer).Error; err != nil {
		log.Printf("⚠️  [order.invoice] failed to fetch customer: %v", err)
		return
	}

	pdfBuf, err := services.GenerateOrderInvoicePDF(&order, items, customer.Name, customer.Email)
	if err != nil {
		log.Printf("⚠️  [order.invoice] pdf generation failed: %v", err)
		return
	}

	if resendClient == nil {
		log.Printf("⚠️  [order.invoice] email client not initialized, skipping")
		return
	}
	if err := resendClient.SendOrderInvoiceEmail(&order, items, customer.Name, customer.Email, pdfBuf.Bytes()); err != nil {
		log.Printf("⚠️  [order.invoice] email failed: %v", err)
	}
}
