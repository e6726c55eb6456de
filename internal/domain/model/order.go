package model

import (
	"strings"
	"time"
)

// OrderStatus describes the order lifecycle label shown to operators.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus resolves a status label case-insensitively.
func ParseOrderStatus(label string) (OrderStatus, bool) {
	for _, s := range OrderStatuses {
		if strings.EqualFold(string(s), label) {
			return s, true
		}
	}
	return "", false
}

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem pairs a product snapshot with the ordered quantity.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a finalized purchase. Total is derived from items at build time
// and must equal their price*quantity sum.
type Order struct {
	ID       string      `json:"id"`
	Customer Customer    `json:"customer"`
	Date     time.Time   `json:"date"`
	Status   OrderStatus `json:"status"`
	Total    float64     `json:"total"`
	Items    []OrderItem `json:"items"`
}

// ItemsTotal recomputes the order total from its items.
func (o Order) ItemsTotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}
