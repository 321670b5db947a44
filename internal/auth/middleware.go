package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware guards administrative routes
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new admin guard. A nil service disables the guard.
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAdmin validates the bearer token and stores its claims on the context
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.service == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("admin_subject", claims.Subject)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

// GetAdminClaims extracts the admin claims set by RequireAdmin
func GetAdminClaims(c *gin.Context) (*AdminClaims, bool) {
	if claims, exists := c.Get("auth_claims"); exists {
		if ac, ok := claims.(*AdminClaims); ok {
			return ac, true
		}
	}
	return nil, false
}
