package dto

import "time"

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest describes a draft submission.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Items         []OrderItemRequest `json:"items"`
}

// CustomerResponse identifies who placed the order.
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemResponse is one finalized order line.
type OrderItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

// OrderResponse describes a finalized order.
type OrderResponse struct {
	ID       string              `json:"id"`
	Customer CustomerResponse    `json:"customer"`
	Date     time.Time           `json:"date"`
	Status   string              `json:"status"`
	Total    float64             `json:"total"`
	Items    []OrderItemResponse `json:"items"`
}

// StatusUpdateRequest carries the requested status label.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
