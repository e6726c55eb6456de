package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/server/http/dto"
	"github.com/vlasewsky/orderdesk/internal/server/http/middleware"
)

// AuthHandler processes login, logout and session lookup.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.ClearAuthCookie(c)
	c.Status(http.StatusOK)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.facade.CurrentUser(c.Request.Context())
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Email: user.Email, Name: user.Name})
}
