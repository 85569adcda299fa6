package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kounhany-ai-go/pkg/log"
	"kounhany-ai-go/pkg/token"
)

// AdminAuth guards the dashboard routes. It expects a Bearer token issued
// by the admin login and an "admin" role claim.
func AdminAuth(jwtManager *token.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error", "code": http.StatusUnauthorized, "message": "Authorization header required.",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error", "code": http.StatusUnauthorized, "message": "Invalid authorization header format.",
			})
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			log.Warnf("AdminAuth: token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status": "error", "code": http.StatusUnauthorized, "message": "Invalid or expired token.",
			})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status": "error", "code": http.StatusForbidden, "message": "Admin privileges required.",
			})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
