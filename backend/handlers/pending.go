package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/utils"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PendingUserHandler struct {
	db *gorm.DB
}

// RegisterPendingUsers mounts the pre-registration roster routes. The
// group is expected to be admin-only.
func RegisterPendingUsers(r *gin.RouterGroup, db *gorm.DB) {
	handler := &PendingUserHandler{db: db}
	r.GET("/pending-users", handler.List)
	r.POST("/pending-users", handler.Create)
	r.DELETE("/pending-users/:id", handler.Delete)
}

func (h *PendingUserHandler) List(c *gin.Context) {
	var rows []models.PendingUser
	if err := h.db.Order("createdAt DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Map(rows, pendingUserResponseFrom))
}

type pendingUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

func (h *PendingUserHandler) Create(c *gin.Context) {
	var req pendingUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	phone := strings.TrimSpace(req.Phone)
	email := strings.TrimSpace(req.Email)
	if phone == "" && email == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("either phone or email is required"))
		return
	}

	row := models.PendingUser{
		Name:   strings.TrimSpace(req.Name),
		Active: true,
	}
	if phone != "" {
		row.Phone = utils.Ptr(phone)
	}
	if email != "" {
		row.Email = utils.Ptr(email)
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		row.Notes = utils.Ptr(notes)
	}

	if err := h.db.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, pendingUserResponseFrom(row))
}

func (h *PendingUserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	result := h.db.Delete(&models.PendingUser{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(result.Error.Error()))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("pending user not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
