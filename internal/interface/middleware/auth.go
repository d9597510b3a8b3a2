package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/inkpress/pkg/helpers"
	"github.com/inkpress/inkpress/pkg/response"
)

// Gin context keys populated by Authenticate.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Authenticate validates the `Authorization: Bearer <token>` header and puts
// the claims into the Gin context. A missing header, a malformed scheme and a
// bad token all abort with 401.
func Authenticate(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "token not provided", nil)
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error[any](c, http.StatusUnauthorized, "malformed token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(parts[1])
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated user's role. It assumes
// Authenticate already ran; a missing role means an unauthenticated request.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(CtxUserRoleKey)
		if current == "" {
			response.Error[any](c, http.StatusUnauthorized, "user not authenticated", nil)
			c.Abort()
			return
		}
		if current != role {
			response.Error[any](c, http.StatusForbidden, "access denied: insufficient permission", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the Gin context.
func UserID(c *gin.Context) uint {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
