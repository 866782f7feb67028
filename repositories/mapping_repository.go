package repositories

import (
	"errors"

	"gorm.io/gorm"

	"SinOutGo/models"
)

// MappingRepository stores emotion mappings. Deletion is logical: a
// mapping is only ever flipped to Active=false, so GetByID can still
// retrieve soft-deleted rows while the ListActive* methods exclude
// them.
type MappingRepository interface {
	GetByID(id string) (*models.EmotionMapping, error)
	ListByUser(userID string) ([]models.EmotionMapping, error)
	ListByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error)
	ListActiveByUser(userID string) ([]models.EmotionMapping, error)
	// ListActiveByUserAndEmotion returns active mappings ordered by
	// priority ascending.
	ListActiveByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error)
	CountActiveByUserAndEmotion(userID, emotion string) (int64, error)
	Create(mapping *models.EmotionMapping) error
	Update(mapping *models.EmotionMapping) error
}

type GormMappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) *GormMappingRepository {
	return &GormMappingRepository{db: db}
}

func (r *GormMappingRepository) GetByID(id string) (*models.EmotionMapping, error) {
	var mapping models.EmotionMapping
	if err := r.db.Where("id = ?", id).First(&mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *GormMappingRepository) ListByUser(userID string) ([]models.EmotionMapping, error) {
	var mappings []models.EmotionMapping
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *GormMappingRepository) ListByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error) {
	var mappings []models.EmotionMapping
	if err := r.db.Where("user_id = ? AND emotion = ?", userID, emotion).
		Order("created_at").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *GormMappingRepository) ListActiveByUser(userID string) ([]models.EmotionMapping, error) {
	var mappings []models.EmotionMapping
	if err := r.db.Where("user_id = ? AND active = ?", userID, true).
		Order("created_at").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *GormMappingRepository) ListActiveByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error) {
	var mappings []models.EmotionMapping
	if err := r.db.Where("user_id = ? AND emotion = ? AND active = ?", userID, emotion, true).
		Order("priority").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *GormMappingRepository) CountActiveByUserAndEmotion(userID, emotion string) (int64, error) {
	var count int64
	err := r.db.Model(&models.EmotionMapping{}).
		Where("user_id = ? AND emotion = ? AND active = ?", userID, emotion, true).
		Count(&count).Error
	return count, err
}

func (r *GormMappingRepository) Create(mapping *models.EmotionMapping) error {
	return r.db.Create(mapping).Error
}

func (r *GormMappingRepository) Update(mapping *models.EmotionMapping) error {
	return r.db.Save(mapping).Error
}
