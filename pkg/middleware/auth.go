package middleware

import (
	"net/http"
	"strings"

	"github.com/h9rms/wanderlust-grid-bloom/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores
// the authenticated user id and role in the gin context.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer identity when a valid token
// is present but lets anonymous requests through. Read paths use it so
// like/save state can be personalized without requiring a login.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := jwtService.ValidateToken(parts[1]); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
		}
		c.Next()
	}
}
