package handlers

import (
	"errors"
	"net/http"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/guard"
	"churchtrack.com/churchtrack/infrastructure/communication"
	"churchtrack.com/churchtrack/roster"
	"churchtrack.com/churchtrack/web/common"
	"churchtrack.com/churchtrack/web/middlewares"
	"github.com/gin-gonic/gin"
)

// Console groups the handlers of the admin views. It owns no data of its
// own: every request goes to the backend through the API client, and
// derived values are recomputed per request.
type Console struct {
	Client *v1.ChurchTrackClient
	Guard  *guard.Guard
	Notify *communication.Slack
}

func Register(r *gin.Engine, con *Console) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, guard.DefaultPath)
	})

	r.GET("/login", middlewares.LoginOnly(con.Guard), con.LoginPage)
	r.POST("/login", con.Login)

	protected := r.Group("/", middlewares.RequireAuth(con.Guard))
	{
		protected.POST("/logout", con.Logout)
		protected.GET("/dashboard", con.Dashboard)
		protected.GET("/attendance", con.AttendanceList)
		protected.GET("/attendance/export", con.AttendanceExport)
		protected.GET("/pending-users", con.PendingUserList)
		protected.POST("/pending-users", con.PendingUserCreate)
		protected.DELETE("/pending-users/:id", con.PendingUserDelete)
	}
}

// rosterFor builds a roster manager whose confirmation answer comes from
// the request, so the browser's confirm dialog result travels with the
// destructive call.
func (con *Console) rosterFor(confirmed bool) *roster.Manager {
	return roster.NewManager(con.Client.PendingUsers, roster.ConfirmerFunc(func(string) bool {
		return confirmed
	}))
}

// respondError translates client errors for non-list endpoints. A rejected
// session redirects to login; everything else becomes an inline message
// with the backend's status passed through unmodified.
func (con *Console) respondError(c *gin.Context, err error) {
	var reqErr *v1.RequestFailedError
	switch {
	case errors.Is(err, v1.ErrUnauthenticated):
		c.Redirect(http.StatusFound, guard.LoginPath)
		c.Abort()
	case errors.As(err, &reqErr):
		c.JSON(reqErr.Status, common.NewErrorResponse(reqErr.Message))
	default:
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
	}
}

// respondListError keeps list views rendering on failure: an empty data set
// plus an error banner instead of a blank page. Session rejection still
// redirects.
func (con *Console) respondListError(c *gin.Context, err error) {
	if errors.Is(err, v1.ErrUnauthenticated) {
		c.Redirect(http.StatusFound, guard.LoginPath)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, common.NewListResponse(nil, err.Error()))
}
