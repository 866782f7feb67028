package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/services"
)

// defaultWindowHours is the trailing window when ?hours is absent.
const defaultWindowHours = 24

// HistoryController exposes the detection log and its statistics.
type HistoryController struct {
	history  *services.HistoryService
	patients *services.PatientService
}

func NewHistoryController(history *services.HistoryService, patients *services.PatientService) *HistoryController {
	return &HistoryController{history: history, patients: patients}
}

func windowHours(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("hours", strconv.Itoa(defaultWindowHours))
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "hours must be a positive integer"})
		return 0, false
	}
	return hours, true
}

// ListHistory returns the caller's records inside the window.
func (hc *HistoryController) ListHistory(c *gin.Context) {
	hours, ok := windowHours(c)
	if !ok {
		return
	}

	uid := c.GetString("uid")
	records, err := hc.history.ListByUser(uid, uid, c.GetString("role"), hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetStatistics summarizes the window, either for the caller's own
// log or, with ?patientId, for one patient the caller can see.
func (hc *HistoryController) GetStatistics(c *gin.Context) {
	hours, ok := windowHours(c)
	if !ok {
		return
	}

	uid := c.GetString("uid")
	role := c.GetString("role")

	if patientID := c.Query("patientId"); patientID != "" {
		if _, err := hc.patients.GetByID(patientID, uid, role); err != nil {
			respondError(c, err)
			return
		}
		stats, err := hc.history.ComputeStatisticsByPatient(patientID, hours)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	stats, err := hc.history.ComputeStatisticsByUser(uid, uid, role, hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Cleanup bulk-deletes records older than ?hours. Admin-only; the
// route carries the role gate.
func (hc *HistoryController) Cleanup(c *gin.Context) {
	hours, ok := windowHours(c)
	if !ok {
		return
	}

	deleted, err := hc.history.DeleteOlderThan(hours)
	if err != nil {
		respondError(c, err)
		return
	}

	config.Logger.Infow("history cleanup", "hours", hours, "deleted", deleted, "by", c.GetString("uid"))
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
