package middleware

import (
	"net/http"
	"strings"

	"car-rental-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "

	accountIDKey = "account_id"
	roleKey      = "role"
)

// JWTAuth проверяет bearer токен и кладет id аккаунта и роль в контекст gin.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Missing authorization token")
			return
		}
		if !strings.HasPrefix(authHeader, bearer) {
			abort(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(authHeader, bearer), secret)
		if err != nil || claims.ID == 0 || claims.Role == "" {
			abort(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(accountIDKey, claims.ID)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRole пропускает только перечисленные роли, остальным 403.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			abort(c, http.StatusUnauthorized, "Missing authorization token")
			return
		}
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "Access denied")
	}
}

func AccountID(c *gin.Context) uint {
	return c.GetUint(accountIDKey)
}

func Role(c *gin.Context) string {
	return c.GetString(roleKey)
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
