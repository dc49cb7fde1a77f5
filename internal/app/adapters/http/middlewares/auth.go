package middlewares

import (
	"crypto/subtle"
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
)

// Auth requires "Authorization: Bearer <token>". Without a token every
// request passes.
func (m *Middlewares) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, expected, _ := m.state()
		if expected == "" {
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(auth, "Bearer ")), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// Admin guards operator endpoints with basic auth as user "admin". Without a
// token, optional endpoints are open and the rest answer 404.
func (m *Middlewares) Admin(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _, basicAuth := m.state()
		switch {
		case basicAuth != nil:
			basicAuth(c)
		case optional:
			c.Next()
		default:
			c.AbortWithStatus(http.StatusNotFound)
		}
	}
}
