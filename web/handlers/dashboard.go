package handlers

import (
	"net/http"

	"churchtrack.com/churchtrack/views"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
)

// Dashboard loads attendance and service data and derives the overview:
// status counts, the ten most recent check-ins, and the service list. Both
// fetches must complete before anything derived is computed; a failure of
// either yields the error-banner payload rather than a partial view.
func (con *Console) Dashboard(c *gin.Context) {
	attendances, err := con.Client.Attendance.All()
	if err != nil {
		con.respondListError(c, err)
		return
	}

	services, err := con.Client.Services.All()
	if err != nil {
		con.respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"stats":             views.ComputeStats(attendances),
		"recentAttendances": views.RecentN(attendances, 10),
		"services":          services,
	}))
}
