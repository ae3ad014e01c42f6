package handlers

import (
	"errors"
	"net/http"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/guard"
	"churchtrack.com/churchtrack/session"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginPage is the unauthenticated entry point. The console ships no
// markup; the page payload just tells the frontend where to post.
func (con *Console) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":  "ChurchTrack Admin Login",
		"action": "/login",
	})
}

func (con *Console) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	result, err := con.Client.Auth.Login(form.Username, form.Password)
	if err != nil {
		var roleErr *session.InvalidRoleError
		var reqErr *v1.RequestFailedError
		switch {
		case errors.As(err, &roleErr):
			c.JSON(http.StatusForbidden, common.NewErrorResponse("administrator access required"))
		case errors.As(err, &reqErr):
			c.JSON(reqErr.Status, common.NewErrorResponse(reqErr.Message))
		default:
			c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		}
		return
	}

	con.Guard.Refresh()
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"name": result.Name,
		"role": result.Role,
	}))
}

func (con *Console) Logout(c *gin.Context) {
	con.Client.Auth.Logout()
	con.Guard.Refresh()
	c.Redirect(http.StatusFound, guard.LoginPath)
}
