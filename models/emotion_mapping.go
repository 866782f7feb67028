package models

import (
	"fmt"
	"strings"
	"time"
)

// Canonical emotion names accepted by the API.
var ValidEmotions = map[string]bool{
	"happy":    true,
	"sad":      true,
	"angry":    true,
	"fear":     true,
	"surprise": true,
	"neutral":  true,
	"disgust":  true,
}

// The two canonical intensity bands. Inputs may also spell them
// "superior" and "inferior"; both pairs mean the same thing.
const (
	BandHigh     = "high"     // detected percentage >= 50
	BandModerate = "moderate" // detected percentage <= 50
)

// Per-emotion limits on active mappings.
const (
	MaxMappingsPerEmotion = 2
	MinPriority           = 1
	MaxPriority           = 2
	MaxMessageLength      = 200
)

// ParseEmotion normalizes an emotion name to lowercase and validates it
// against the closed enumeration.
func ParseEmotion(raw string) (string, error) {
	emotion := strings.ToLower(strings.TrimSpace(raw))
	if !ValidEmotions[emotion] {
		return "", NewDomainError(fmt.Sprintf("Invalid emotion: %s", raw))
	}
	return emotion, nil
}

// ParseIntensityBand maps the four accepted spellings onto the two
// canonical bands so business logic never sees the synonyms.
func ParseIntensityBand(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "superior":
		return BandHigh, nil
	case "moderate", "inferior":
		return BandModerate, nil
	default:
		return "", NewDomainError(fmt.Sprintf("Invalid intensity: %s", raw))
	}
}

// EmotionMapping is a caregiver-authored rule: when the detected emotion
// and its percentage satisfy the rule's band and threshold, the rule's
// message is triggered. Deletion is logical (Active=false).
type EmotionMapping struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index" json:"userId"`
	Emotion       string    `gorm:"type:varchar(20)" json:"emotion"`
	IntensityBand string    `gorm:"type:varchar(20)" json:"intensity"`
	MinPercentage float64   `json:"minPercentage"`
	Message       string    `gorm:"type:varchar(200)" json:"message"`
	Priority      int       `json:"priority"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Matches reports whether a detected percentage satisfies this rule.
// The high band wants >= 50, the moderate band wants <= 50; exactly 50
// satisfies both. On top of the band, the percentage must reach the
// rule's own threshold.
func (m *EmotionMapping) Matches(percentage float64) bool {
	var intensityMatch bool
	switch m.IntensityBand {
	case BandHigh:
		intensityMatch = percentage >= 50
	case BandModerate:
		intensityMatch = percentage <= 50
	}
	return intensityMatch && percentage >= m.MinPercentage
}
