package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"sync"
)

type Middlewares struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	token     string
	basicAuth gin.HandlerFunc
}

// New builds the middleware set. A nil limiter disables rate limiting, an
// empty token disables authentication.
func New(limiter *rate.Limiter, token string) *Middlewares {
	m := &Middlewares{}
	m.Apply(limiter, token)
	return m
}

// Apply swaps the limiter and token used by requests from now on.
func (m *Middlewares) Apply(limiter *rate.Limiter, token string) {
	var basicAuth gin.HandlerFunc
	if token != "" {
		basicAuth = gin.BasicAuth(gin.Accounts{"admin": token})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.limiter = limiter
	m.token = token
	m.basicAuth = basicAuth
}

func (m *Middlewares) state() (*rate.Limiter, string, gin.HandlerFunc) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.limiter, m.token, m.basicAuth
}
