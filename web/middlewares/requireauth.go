package middlewares

import (
	"net/http"

	"churchtrack.com/churchtrack/guard"
	"github.com/gin-gonic/gin"
)

// RequireAuth gates protected console views. An unauthenticated visitor is
// sent to the login page; everyone else proceeds.
func RequireAuth(g *guard.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.Decide(true)
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginOnly guards the login entry point: an already-authenticated admin is
// bounced straight to the dashboard.
func LoginOnly(g *guard.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.Decide(false)
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
