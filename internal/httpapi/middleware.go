// Package httpapi exposes the same operations as the lambda functions on a
// local gin server, for development without API Gateway in front.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/auth"
)

// Authenticate validates the bearer token and stores the claims on the
// request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.ValidateToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*auth.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}
