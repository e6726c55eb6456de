package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/server/http/dto"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.facade.Products(c.Query("search"))

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	c.JSON(http.StatusOK, response)
}

func toProductResponse(product model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
		Image:    product.Image,
	}
}
