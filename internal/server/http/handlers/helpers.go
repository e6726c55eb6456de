package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vlasewsky/orderdesk/internal/server/http/middleware"
)

// CurrentUserEmail extracts the authenticated user's email from context.
func CurrentUserEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.UserEmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}
