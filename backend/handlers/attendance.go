package handlers

import (
	"net/http"
	"strconv"

	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/utils"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func RegisterAttendance(r *gin.RouterGroup, db *gorm.DB) {
	handler := &AttendanceHandler{db: db}
	r.GET("/attendance/all", handler.All)
	r.GET("/attendance/service/:id", handler.ByService)
}

func (h *AttendanceHandler) All(c *gin.Context) {
	var rows []models.Attendance
	err := h.db.Preload("User").Preload("Service").
		Order("checkedAt DESC").Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.Map(rows, attendanceResponseFrom))
}

func (h *AttendanceHandler) ByService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var rows []models.Attendance
	err = h.db.Preload("User").Preload("Service").
		Where("serviceId = ?", id).Order("checkedAt DESC").Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.Map(rows, attendanceResponseFrom))
}
