package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/models"
)

// respondError maps a service error onto the wire: domain violations
// answer with their own status (400 for most, 404/403 where the
// service decided so) and a {message} body; anything else is an
// infrastructure failure, logged and answered with a bare 500.
func respondError(c *gin.Context, err error) {
	if de, ok := models.AsDomainError(err); ok {
		c.JSON(de.Status, gin.H{"message": de.Message})
		return
	}
	config.Logger.Errorw("internal error",
		"error", err,
		"path", c.Request.URL.Path,
		"requestID", c.GetString("requestID"),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
