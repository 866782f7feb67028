package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SinOutGo/models"
	"SinOutGo/services"
)

// PasswordResetController exposes the forgot-password flow.
type PasswordResetController struct {
	resets *services.PasswordResetService
}

func NewPasswordResetController(resets *services.PasswordResetService) *PasswordResetController {
	return &PasswordResetController{resets: resets}
}

// ForgotPassword emails a reset code. The response is the same whether
// or not the address is registered; only the throttle leaks through.
func (prc *PasswordResetController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := prc.resets.RequestReset(req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email is registered, a reset code was sent"})
}

// ResetPassword consumes the emailed code and sets the new password.
func (prc *PasswordResetController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := prc.resets.ConfirmReset(req.Email, req.Code, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}
