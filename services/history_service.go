package services

import (
	"sort"
	"time"

	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/utils"
)

// hourBucketFormat groups records for trend statistics. Zero-padded so
// the labels sort correctly as plain strings.
const hourBucketFormat = "2006-01-02 15:00"

// HistoryService owns the append-only detection log and the derived
// statistics.
type HistoryService struct {
	history repositories.HistoryRepository
	now     func() time.Time
}

func NewHistoryService(history repositories.HistoryRepository) *HistoryService {
	return &HistoryService{history: history, now: time.Now}
}

// DominantEmotion picks the emotion with the highest detected
// percentage out of a detection map.
func DominantEmotion(emotions map[string]float64) (string, float64) {
	var dominant string
	var highest float64
	for emotion, percentage := range emotions {
		if dominant == "" || percentage > highest {
			dominant = emotion
			highest = percentage
		}
	}
	return dominant, highest
}

// CreateRecord appends one detection event. The timestamp defaults to
// the current UTC time when the caller left it zero; records are never
// mutated afterwards.
func (s *HistoryService) CreateRecord(record *models.HistoryRecord) error {
	if record.ID == "" {
		record.ID = utils.GenerateID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = s.now().UTC()
	}
	return s.history.Create(record)
}

// ListByUser returns a user's records inside the trailing window,
// gated by ownership.
func (s *HistoryService) ListByUser(ownerID, requesterID, requesterRole string, hours int) ([]models.HistoryRecord, error) {
	if err := RequireOwnership(ownerID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	since := s.now().UTC().Add(-time.Duration(hours) * time.Hour)
	return s.history.ListByUserSince(ownerID, since)
}

// DeleteOlderThan bulk-removes records strictly older than the given
// number of hours. A record sitting exactly on the boundary stays.
func (s *HistoryService) DeleteOlderThan(hours int) (int64, error) {
	cutoff := s.now().UTC().Add(-time.Duration(hours) * time.Hour)
	return s.history.DeleteOlderThan(cutoff)
}

// ComputeStatisticsByUser summarizes a user's records over the
// trailing window, gated by ownership.
func (s *HistoryService) ComputeStatisticsByUser(ownerID, requesterID, requesterRole string, hours int) (*models.PatientStatistics, error) {
	if err := RequireOwnership(ownerID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	end := s.now().UTC()
	start := end.Add(-time.Duration(hours) * time.Hour)
	records, err := s.history.ListByUserSince(ownerID, start)
	if err != nil {
		return nil, err
	}
	return summarize(records, start, end), nil
}

// ComputeStatisticsByPatient is the per-patient variant; the caller
// must already have resolved the patient and checked ownership.
func (s *HistoryService) ComputeStatisticsByPatient(patientID string, hours int) (*models.PatientStatistics, error) {
	end := s.now().UTC()
	start := end.Add(-time.Duration(hours) * time.Hour)
	records, err := s.history.ListByPatientSince(patientID, start)
	if err != nil {
		return nil, err
	}
	return summarize(records, start, end), nil
}

// summarize derives the frequency maps, arg-max picks and hourly
// trends. Frequency ties fall to whichever key map iteration yields
// first; the order is not defined and ties are not expected to matter.
func summarize(records []models.HistoryRecord, start, end time.Time) *models.PatientStatistics {
	stats := &models.PatientStatistics{
		StartDate:        start,
		EndDate:          end,
		TotalRecords:     len(records),
		EmotionFrequency: make(map[string]int),
		MessageFrequency: make(map[string]int),
	}

	type bucket struct {
		sums   map[string]float64
		counts map[string]int
		total  int
	}
	buckets := make(map[string]*bucket)

	for _, record := range records {
		if record.DominantEmotion != "" {
			stats.EmotionFrequency[record.DominantEmotion]++
		}
		if record.TriggeredMessage != "" {
			stats.MessageFrequency[record.TriggeredMessage]++
		}

		hour := record.Timestamp.UTC().Format(hourBucketFormat)
		b := buckets[hour]
		if b == nil {
			b = &bucket{sums: make(map[string]float64), counts: make(map[string]int)}
			buckets[hour] = b
		}
		b.total++
		// A record missing an emotion key contributes nothing to that
		// key's average, rather than a zero.
		for emotion, percentage := range record.Emotions {
			b.sums[emotion] += percentage
			b.counts[emotion]++
		}
	}

	stats.MostFrequentEmotion = argMax(stats.EmotionFrequency)
	stats.MostFrequentMessage = argMax(stats.MessageFrequency)

	hours := make([]string, 0, len(buckets))
	for hour := range buckets {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	stats.EmotionTrends = make([]models.EmotionTrend, 0, len(hours))
	for _, hour := range hours {
		b := buckets[hour]
		averages := make(map[string]float64, len(b.sums))
		for emotion, sum := range b.sums {
			averages[emotion] = sum / float64(b.counts[emotion])
		}
		stats.EmotionTrends = append(stats.EmotionTrends, models.EmotionTrend{
			Hour:        hour,
			Averages:    averages,
			RecordCount: b.total,
		})
	}

	return stats
}

func argMax(frequency map[string]int) string {
	var best string
	var bestCount int
	for key, count := range frequency {
		if count > bestCount {
			best = key
			bestCount = count
		}
	}
	return best
}
