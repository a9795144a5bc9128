package ordercontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/threadcraft/boutique-api/events"
	"github.com/threadcraft/boutique-api/mailer"
	"github.com/threadcraft/boutique-api/models"
	"github.com/threadcraft/boutique-api/pricing"
	"github.com/threadcraft/boutique-api/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request structs --------

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CheckoutRequest struct {
	ID           string         `json:"id"` // optional, generated when empty
	CustomerName string         `json:"customer_name" binding:"required"`
	Phone        string         `json:"phone" binding:"required"`
	Address      string         `json:"address" binding:"required"`
	District     string         `json:"district" binding:"required"`
	Date         *time.Time     `json:"date"` // optional, defaults to now
	Items        []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

type QuoteRequest struct {
	District string         `json:"district"`
	Items    []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core logic --------

// PlaceOrder validates stock, decrements it and creates the order in one
// transaction. The snapshot lines carry the product name and price at
// purchase time.
func PlaceOrder(db *gorm.DB, homeDistrict string, req CheckoutRequest) (models.Order, error) {
	if req.District == "" {
		return models.Order{}, errors.New("district is required")
	}
	order := models.Order{
		ID:           req.ID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		District:     req.District,
		Status:       models.OrderStatusPending,
	}
	if order.ID == "" {
		order.ID = generateOrderID()
	}
	if req.Date != nil {
		order.CreatedAt = *req.Date
	} else {
		order.CreatedAt = time.Now()
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []pricing.Line

		for _, item := range req.Items {
			// row locks are postgres-only; sqlite (tests) serializes writes anyway
			q := tx
			if tx.Dialector.Name() == "postgres" {
				q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var product models.Product
			if err := q.First(&product, item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.New("product does not exist")
				}
				return err
			}

			quantity := pricing.ClampQuantity(item.Quantity, product.Stock)
			if product.Stock < quantity {
				return errors.New("insufficient stock for product: " + product.Name)
			}

			product.Stock -= quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			lines = append(lines, pricing.Line{Price: product.Price, Quantity: quantity})
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    quantity,
			})
		}

		quote := pricing.Compute(lines, req.District, homeDistrict)
		order.Subtotal = quote.Subtotal
		order.ShippingCharge = *quote.Shipping // non-nil, district checked above
		order.TotalAmount = quote.Total

		return tx.Create(&order).Error
	})
	return order, err
}

// -------- Handlers --------

// QuoteHandler prices a prospective order without persisting anything.
// Shipping is null until a district is selected. POST /orders/quote
func QuoteHandler(db *gorm.DB, homeDistrict string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var lines []pricing.Line
		for _, item := range req.Items {
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err != nil {
				response.Error(c, http.StatusBadRequest, "Product does not exist")
				return
			}
			lines = append(lines, pricing.Line{
				Price:    product.Price,
				Quantity: pricing.ClampQuantity(item.Quantity, product.Stock),
			})
		}

		response.OK(c, http.StatusOK, pricing.Compute(lines, req.District, homeDistrict))
	}
}

// PlaceOrderHandler creates an order at checkout, notifies the shop inbox
// and publishes an order event. Email failures stay server-side.
// POST /orders
func PlaceOrderHandler(db *gorm.DB, homeDistrict string, mail *mailer.Mailer, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		order, err := PlaceOrder(db, homeDistrict, req)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		mail.NotifyAsync(order)
		if err := pub.PublishOrderEvent(events.OrderEvent{
			Type:       events.TypeOrderCreated,
			OrderID:    order.ID,
			Status:     order.Status,
			Amount:     order.TotalAmount,
			OccurredAt: time.Now(),
		}); err != nil {
			// the order is already committed, event loss is tolerable
			log.Printf("order event for %s not published: %v", order.ID, err)
		}
		broadcastOrder(order)

		response.OK(c, http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists every order newest first. GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		response.OKWithMeta(c, http.StatusOK, orders, gin.H{"count": len(orders)})
	}
}

// GetOrdersByPhoneHandler lists a customer's orders. GET /orders/phone/:phone
func GetOrdersByPhoneHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Param("phone")
		var orders []models.Order
		if err := db.Preload("Items").Where("phone = ?", phone).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		response.OK(c, http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns one order. GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, "Order not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to fetch order")
			return
		}
		response.OK(c, http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler sets any status from any other; the back office
// allows every transition directly. PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}

		order.Status = newStatus
		if err := pub.PublishOrderEvent(events.OrderEvent{
			Type:       events.TypeOrderStatusChanged,
			OrderID:    order.ID,
			Status:     newStatus,
			Amount:     order.TotalAmount,
			OccurredAt: time.Now(),
		}); err != nil {
			log.Printf("status event for %s not published: %v", order.ID, err)
		}
		broadcastOrder(order)

		response.OK(c, http.StatusOK, gin.H{"message": "Order status updated successfully", "status": newStatus})
	}
}

// DeleteOrderHandler removes an order and its snapshot lines.
// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			response.Error(c, http.StatusNotFound, "Order not found")
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete order")
			return
		}
		response.OK(c, http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
