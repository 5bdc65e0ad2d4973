package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/application/services"
)

const (
	CtxUserID = "userID"
	CtxUser   = "user"
)

// AuthMiddleware resolves the bearer token against the session store on
// every request; there is no verification cache.
func AuthMiddleware(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		u, err := authService.Verify(c.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, services.ErrInvalidSession) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "invalid or expired session"},
				)
				return
			}
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to verify session"},
			)
			return
		}

		c.Set(CtxUserID, u.ID)
		c.Set(CtxUser, u)

		c.Next()
	}
}
