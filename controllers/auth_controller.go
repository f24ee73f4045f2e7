package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Temur01/restaurant-server/models"
	"github.com/Temur01/restaurant-server/repositories"
	"github.com/Temur01/restaurant-server/utils"

	"github.com/gin-gonic/gin"
)

type AdminProvider interface {
	FindByUsername(username string) (*models.Admin, error)
}

type AuthController struct {
	admins     AdminProvider
	secret     string
	production bool
}

func NewAuthController(admins AdminProvider, secret string, production bool) *AuthController {
	return &AuthController{admins: admins, secret: secret, production: production}
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login godoc
// @Summary     Admin login
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body LoginInput true "Admin credentials"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     401 {object} map[string]interface{}
// @Router      /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}
	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	if ctl.secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error"})
		return
	}

	admin, err := ctl.admins.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			// same message as a wrong password, no username probing
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		ctl.serverError(c, err)
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(ctl.secret, admin.ID, admin.Username)
	if err != nil {
		ctl.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

// Verify godoc
// @Summary     Verify a bearer token
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{}
// @Failure     401 {object} map[string]interface{}
// @Router      /auth/verify [get]
func (ctl *AuthController) Verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Token not found"})
		return
	}

	claims, err := utils.ParseJWT(ctl.secret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}

func (ctl *AuthController) serverError(c *gin.Context, err error) {
	serverError(c, err, ctl.production)
}
