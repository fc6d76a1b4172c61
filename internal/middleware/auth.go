package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "brrrrleads/internal/pkg/jwt"
)

const RoleAdmin = "admin"

// AdminAuth guards the ops endpoints with a Bearer token carrying the
// admin role.
func AdminAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil || claims.Role != RoleAdmin {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("admin_email", claims.SessionID)
		c.Next()
	}
}

// VisitorSession parses the optional X-Session-Token header and, when
// valid, exposes the visitor session ID to handlers. An absent or
// invalid token is not an error: the intake handler decides whether a
// session is required.
func VisitorSession(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := strings.TrimSpace(c.GetHeader("X-Session-Token"))
		if tokenStr != "" {
			if claims, err := jwt.ValidateToken(tokenStr); err == nil && claims.Role != RoleAdmin {
				c.Set("session_id", claims.SessionID)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
