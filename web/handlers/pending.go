package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/guard"
	"churchtrack.com/churchtrack/roster"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
)

type pendingUserForm struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (con *Console) PendingUserList(c *gin.Context) {
	users, err := con.rosterFor(false).List()
	if err != nil {
		con.respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewListResponse(users, ""))
}

func (con *Console) PendingUserCreate(c *gin.Context) {
	var form pendingUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	users, err := con.rosterFor(false).Create(roster.Form{
		Name:  form.Name,
		Phone: form.Phone,
		Email: form.Email,
		Notes: form.Notes,
	})
	if err != nil {
		var vErr *roster.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(vErr.Error()))
			return
		}
		con.respondError(c, err)
		return
	}

	_ = con.Notify.Info(fmt.Sprintf("new pre-registration: %s", form.Name))
	c.JSON(http.StatusOK, common.NewListResponse(users, ""))
}

// PendingUserDelete issues the destructive call only when the request says
// the admin confirmed. An unconfirmed request changes nothing and returns
// the roster as it stands.
func (con *Console) PendingUserDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	confirmed := c.Query("confirm") == "true"
	manager := con.rosterFor(confirmed)

	current, err := manager.List()
	if err != nil {
		con.respondListError(c, err)
		return
	}

	users, err := manager.Delete(current, id)
	if err != nil {
		if errors.Is(err, v1.ErrUnauthenticated) {
			c.Redirect(http.StatusFound, guard.LoginPath)
			c.Abort()
			return
		}
		// The prior list is preserved alongside the error banner.
		c.JSON(http.StatusOK, common.NewListResponse(users, err.Error()))
		return
	}

	banner := ""
	if !confirmed {
		banner = "confirmation required"
	}
	c.JSON(http.StatusOK, common.NewListResponse(users, banner))
}
