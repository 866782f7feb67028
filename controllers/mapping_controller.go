package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/models"
	"SinOutGo/services"
)

// MappingController exposes the emotion-mapping CRUD plus the detect
// endpoint that runs the matching engine and logs the event.
type MappingController struct {
	mappings *services.MappingService
	history  *services.HistoryService
	patients *services.PatientService
}

func NewMappingController(
	mappings *services.MappingService,
	history *services.HistoryService,
	patients *services.PatientService,
) *MappingController {
	return &MappingController{mappings: mappings, history: history, patients: patients}
}

// CreateMapping adds a rule owned by the caller.
func (mc *MappingController) CreateMapping(c *gin.Context) {
	var req models.MappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	mapping, err := mc.mappings.Create(c.GetString("uid"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapping)
}

// ListMappings returns the caller's rules; ?active=true filters out
// soft-deleted ones and ?emotion=sad narrows to one emotion.
func (mc *MappingController) ListMappings(c *gin.Context) {
	uid := c.GetString("uid")
	role := c.GetString("role")

	var (
		mappings []models.EmotionMapping
		err      error
	)
	switch {
	case c.Query("emotion") != "":
		mappings, err = mc.mappings.ListByUserAndEmotion(uid, uid, role, c.Query("emotion"))
	case c.Query("active") == "true":
		mappings, err = mc.mappings.ListActiveByUser(uid, uid, role)
	default:
		mappings, err = mc.mappings.ListByUser(uid, uid, role)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappings)
}

func (mc *MappingController) GetMapping(c *gin.Context) {
	mapping, err := mc.mappings.GetByID(c.Param("id"), c.GetString("uid"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping)
}

func (mc *MappingController) UpdateMapping(c *gin.Context) {
	var req models.MappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	mapping, err := mc.mappings.Update(c.Param("id"), c.GetString("uid"), c.GetString("role"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping)
}

// DeleteMapping soft-deletes: the row survives, inactive.
func (mc *MappingController) DeleteMapping(c *gin.Context) {
	if err := mc.mappings.SoftDelete(c.Param("id"), c.GetString("uid"), c.GetString("role")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mapping deleted"})
}

// Detect takes one detection event, picks the caller's best matching
// rule for the dominant emotion, and appends the event (with the
// triggered message, if any) to the history log.
func (mc *MappingController) Detect(c *gin.Context) {
	var req models.DetectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if len(req.Emotions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Emotions map must not be empty"})
		return
	}

	uid := c.GetString("uid")
	role := c.GetString("role")

	emotions := make(map[string]float64, len(req.Emotions))
	for emotion, percentage := range req.Emotions {
		emotions[strings.ToLower(strings.TrimSpace(emotion))] = percentage
	}

	// A detection tied to a patient must be for a patient the caller
	// can see.
	if req.PatientID != "" {
		if _, err := mc.patients.GetByID(req.PatientID, uid, role); err != nil {
			respondError(c, err)
			return
		}
	}

	dominant, percentage := services.DominantEmotion(emotions)

	match, err := mc.mappings.FindMatchingRule(uid, dominant, percentage)
	if err != nil {
		respondError(c, err)
		return
	}

	record := &models.HistoryRecord{
		UserID:             uid,
		PatientID:          req.PatientID,
		Emotions:           emotions,
		DominantEmotion:    dominant,
		DominantPercentage: percentage,
	}
	if req.Timestamp != nil {
		record.Timestamp = req.Timestamp.UTC()
	}
	if match != nil {
		record.TriggeredMessage = match.Message
		record.TriggeredRuleID = match.ID
	}

	if err := mc.history.CreateRecord(record); err != nil {
		respondError(c, err)
		return
	}

	config.Logger.Infow("detection recorded",
		"userID", uid,
		"dominant", dominant,
		"percentage", percentage,
		"triggered", match != nil,
	)

	resp := models.DetectionResponse{
		RecordID:           record.ID,
		DominantEmotion:    dominant,
		DominantPercentage: percentage,
		TriggeredMessage:   record.TriggeredMessage,
		TriggeredRuleID:    record.TriggeredRuleID,
	}
	c.JSON(http.StatusCreated, resp)
}
