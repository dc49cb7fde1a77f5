package middlewares

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

func (m *Middlewares) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter, _, _ := m.state()
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
