package middlewares

import (
	"net/http"
	"strings"

	"churchtrack.com/churchtrack/security"
	"churchtrack.com/churchtrack/session"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authentication checks for a valid Bearer token and stores the verified
// identity in the request context.
func Authentication(base64Secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("missing bearer token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("missing bearer token"))
			return
		}

		claims, err := security.ParseIdentityToken(parts[1], base64Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(identityKey, &claims.Identity)
		c.Next()
	}
}

// AdminOnly rejects authenticated non-administrators. Must run after
// Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(identityKey)
		identity, _ := value.(*security.Identity)
		if !ok || identity == nil || identity.Role != session.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("administrator access required"))
			return
		}
		c.Next()
	}
}
