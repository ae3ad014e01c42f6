package handlers

import (
	"net/http"
	"time"

	"churchtrack.com/churchtrack/backend/models"
	"churchtrack.com/churchtrack/security"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 12 * time.Hour

type AuthEndpoint struct {
	db     *gorm.DB
	secret string
}

func RegisterAuth(r *gin.Engine, db *gorm.DB, base64Secret string) {
	endpoint := &AuthEndpoint{db: db, secret: base64Secret}
	r.POST("/auth/login", endpoint.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ep *AuthEndpoint) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var user models.User
	if err := ep.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid username or password"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid username or password"))
		return
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}, ep.secret, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
	})
}
