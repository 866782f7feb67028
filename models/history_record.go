package models

import "time"

// HistoryRecord is one detection event: the full map of detected
// percentages, the dominant emotion, and the mapping message it
// triggered (if any). Records are append-only; the only mutation ever
// applied is the bulk time-based cleanup.
type HistoryRecord struct {
	ID                 string             `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID             string             `gorm:"type:varchar(50);index" json:"userId"`
	PatientID          string             `gorm:"type:varchar(50);index" json:"patientId,omitempty"`
	Timestamp          time.Time          `gorm:"index" json:"timestamp"`
	Emotions           map[string]float64 `gorm:"serializer:json" json:"emotions"`
	DominantEmotion    string             `gorm:"type:varchar(20)" json:"dominantEmotion"`
	DominantPercentage float64            `json:"dominantPercentage"`
	TriggeredMessage   string             `gorm:"type:varchar(200)" json:"triggeredMessage,omitempty"`
	TriggeredRuleID    string             `gorm:"type:varchar(50)" json:"triggeredRuleId,omitempty"`
}
