package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/models"
	"SinOutGo/services"
	"SinOutGo/utils"
)

// AuthController exposes registration, login and password change.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates an account and answers 201 with its public view.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ac.auth.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	config.Logger.Infow("user registered", "userID", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

// Login authenticates and issues a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  models.NewUserResponse(user),
	})
}

// ChangePassword rotates the caller's own password.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := ac.auth.ChangePassword(c.GetString("uid"), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
