package middleware

import (
	"net/http"

	"catalog/web/entity"
	"catalog/web/session"

	"github.com/gin-gonic/gin"
)

// SessionRequired rejects requests that carry no authenticated session.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Success: false,
				Msg:     "authentication required",
			})
			return
		}
		c.Next()
	}
}
