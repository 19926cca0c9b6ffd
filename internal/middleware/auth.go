package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kidsplatform/internal/infrastructure/security"
)

// ProfileIDKey is where AuthMiddleware stores the authenticated profile id.
const ProfileIDKey = "profileID"

func AuthMiddleware(tm *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		profileID, err := tm.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ProfileIDKey, profileID)
		c.Next()
	}
}

// ProfileID reads the authenticated profile id set by AuthMiddleware.
func ProfileID(c *gin.Context) string {
	return c.GetString(ProfileIDKey)
}
