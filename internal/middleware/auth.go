package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mohanyaswanthkumar/hws-pfsd/internal/authz"
	"github.com/mohanyaswanthkumar/hws-pfsd/pkg/utils"
)

// AuthMiddleware validates JWT access token from Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		token := parts[1]

		// Validate token
		claims, err := utils.ValidateAccessToken(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		role := authz.Role(claims.Role)
		if !role.Valid() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Inject principal into context
		c.Set("userID", claims.UserID)
		c.Set("role", role)

		c.Next()
	}
}

// Principal extracts the authenticated principal injected by AuthMiddleware.
// The second return is false when the request never passed authentication.
func Principal(c *gin.Context) (authz.Principal, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return authz.Principal{}, false
	}
	role, ok := c.Get("role")
	if !ok {
		return authz.Principal{}, false
	}
	return authz.Principal{
		UserID: userID.(uint),
		Role:   role.(authz.Role),
	}, true
}

// RequireRoles rejects authenticated requests whose role is not listed
func RequireRoles(roles ...authz.Role) gin.HandlerFunc {
	allowed := make(map[authz.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !allowed[p.Role] {
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
