package repositories

import (
	"time"

	"gorm.io/gorm"

	"SinOutGo/models"
)

// HistoryRepository is the append-only detection log.
type HistoryRepository interface {
	Create(record *models.HistoryRecord) error
	ListByUserSince(userID string, since time.Time) ([]models.HistoryRecord, error)
	ListByPatientSince(patientID string, since time.Time) ([]models.HistoryRecord, error)
	// DeleteOlderThan removes records with timestamps strictly before
	// the cutoff and reports how many were removed.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type GormHistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Create(record *models.HistoryRecord) error {
	return r.db.Create(record).Error
}

func (r *GormHistoryRepository) ListByUserSince(userID string, since time.Time) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	if err := r.db.Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormHistoryRepository) ListByPatientSince(patientID string, since time.Time) ([]models.HistoryRecord, error) {
	var records []models.HistoryRecord
	if err := r.db.Where("patient_id = ? AND timestamp >= ?", patientID, since).
		Order("timestamp").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormHistoryRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("timestamp < ?", cutoff).Delete(&models.HistoryRecord{})
	return result.RowsAffected, result.Error
}
