package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed at checkout, awaiting handling
	OrderStatusProcessing OrderStatus = "processing" // being packed
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the parcel
	OrderStatusCancelled  OrderStatus = "cancelled"  // reachable from any state
)

type Order struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	CustomerName   string      `gorm:"not null" json:"customer_name"`
	Phone          string      `gorm:"index;not null" json:"phone"`
	Address        string      `json:"address"`
	District       string      `json:"district"`
	Subtotal       float64     `json:"subtotal"`
	ShippingCharge float64     `json:"shipping_charge"`
	TotalAmount    float64     `json:"amount"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt      time.Time   `json:"date"`
}

// OrderItem is a denormalized snapshot; later product edits must not
// rewrite order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     string  `gorm:"index" json:"-"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
