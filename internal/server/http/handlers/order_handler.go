package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/server/http/dto"
	"github.com/vlasewsky/orderdesk/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]usecase.DraftItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.DraftItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.CustomerName, req.CustomerEmail, items)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDraft):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrUnknownProduct):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.facade.Orders(c.Request.Context(), c.Query("search"), c.Query("status"))

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Counts handles GET /api/orders/counts.
func (h *OrderHandler) Counts(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.OrderCounts(c.Request.Context()))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnknownStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrOrderTerminal):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
		})
	}

	return dto.OrderResponse{
		ID: order.ID,
		Customer: dto.CustomerResponse{
			Name:  order.Customer.Name,
			Email: order.Customer.Email,
		},
		Date:   order.Date,
		Status: string(order.Status),
		Total:  order.Total,
		Items:  items,
	}
}
