package models

import "time"

// EmotionTrend is one hourly bucket of a statistics window. Averages
// holds, per emotion key, the mean percentage across only the records
// in this bucket that actually contain that key.
type EmotionTrend struct {
	Hour        string             `json:"hour"` // "2006-01-02 15:00" in UTC
	Averages    map[string]float64 `json:"averages"`
	RecordCount int                `json:"recordCount"`
}

// PatientStatistics is the derived summary of a history window. It is
// computed on demand and never persisted.
type PatientStatistics struct {
	StartDate           time.Time      `json:"startDate"`
	EndDate             time.Time      `json:"endDate"`
	TotalRecords        int            `json:"totalRecords"`
	EmotionFrequency    map[string]int `json:"emotionFrequency"`
	MessageFrequency    map[string]int `json:"messageFrequency"`
	MostFrequentEmotion string         `json:"mostFrequentEmotion,omitempty"`
	MostFrequentMessage string         `json:"mostFrequentMessage,omitempty"`
	EmotionTrends       []EmotionTrend `json:"emotionTrends"`
}
