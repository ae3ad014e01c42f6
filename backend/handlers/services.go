package handlers

import (
	"net/http"

	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/utils"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceHandler struct {
	db *gorm.DB
}

func RegisterServices(r *gin.RouterGroup, db *gorm.DB) {
	handler := &ServiceHandler{db: db}
	r.GET("/services/all", handler.All)
	r.GET("/services", handler.Active)
}

func (h *ServiceHandler) All(c *gin.Context) {
	h.respond(c, h.db)
}

func (h *ServiceHandler) Active(c *gin.Context) {
	h.respond(c, h.db.Where("active = ?", true))
}

func (h *ServiceHandler) respond(c *gin.Context, tx *gorm.DB) {
	var rows []models.Service
	if err := tx.Order("serviceTime ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Map(rows, serviceResponseFrom))
}
