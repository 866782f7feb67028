package services

import (
	"fmt"
	"strings"
	"time"

	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/utils"
)

// MappingService owns the emotion-mapping rules: validation, the
// per-emotion limits, soft deletion, and the matching engine that
// picks which message a detection triggers.
type MappingService struct {
	mappings repositories.MappingRepository
}

func NewMappingService(mappings repositories.MappingRepository) *MappingService {
	return &MappingService{mappings: mappings}
}

// validateRequest normalizes and checks the writable fields shared by
// create and update.
func (s *MappingService) validateRequest(req models.MappingRequest) (emotion, band, message string, err error) {
	emotion, err = models.ParseEmotion(req.Emotion)
	if err != nil {
		return "", "", "", err
	}
	band, err = models.ParseIntensityBand(req.Intensity)
	if err != nil {
		return "", "", "", err
	}
	if req.MinPercentage < 0 || req.MinPercentage > 100 {
		return "", "", "", models.NewDomainError("minPercentage must be between 0 and 100")
	}
	message = strings.TrimSpace(req.Message)
	if message == "" {
		return "", "", "", models.NewDomainError("Message must not be empty")
	}
	if len(message) > models.MaxMessageLength {
		return "", "", "", models.NewDomainError(fmt.Sprintf(
			"Message must be at most %d characters", models.MaxMessageLength))
	}
	if req.Priority < models.MinPriority || req.Priority > models.MaxPriority {
		return "", "", "", models.NewDomainError("Priority must be 1 or 2")
	}
	return emotion, band, message, nil
}

// Create validates a new mapping and enforces the per-emotion limits
// for the target user: at most two active mappings per emotion, each
// with a distinct priority. The limits apply to the rule's owner no
// matter who the caller is.
func (s *MappingService) Create(ownerID string, req models.MappingRequest) (*models.EmotionMapping, error) {
	emotion, band, message, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	count, err := s.mappings.CountActiveByUserAndEmotion(ownerID, emotion)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxMappingsPerEmotion {
		return nil, models.NewDomainError(fmt.Sprintf(
			"Limit of %d active mappings for emotion %s reached", models.MaxMappingsPerEmotion, emotion))
	}

	if err := s.checkPriorityConflict(ownerID, emotion, req.Priority, ""); err != nil {
		return nil, err
	}

	mapping := &models.EmotionMapping{
		ID:            utils.GenerateID(),
		UserID:        ownerID,
		Emotion:       emotion,
		IntensityBand: band,
		MinPercentage: req.MinPercentage,
		Message:       message,
		Priority:      req.Priority,
		Active:        true,
	}
	if err := s.mappings.Create(mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// Update rewrites a mapping after the same validation as Create. The
// priority-conflict check skips the mapping itself so an update that
// keeps its own priority is not a conflict.
func (s *MappingService) Update(id, requesterID, requesterRole string, req models.MappingRequest) (*models.EmotionMapping, error) {
	mapping, err := s.mappings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, models.NewDomainError("Mapping not found")
	}
	if err := RequireOwnership(mapping.UserID, requesterID, requesterRole); err != nil {
		return nil, err
	}

	emotion, band, message, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkPriorityConflict(mapping.UserID, emotion, req.Priority, mapping.ID); err != nil {
		return nil, err
	}

	mapping.Emotion = emotion
	mapping.IntensityBand = band
	mapping.MinPercentage = req.MinPercentage
	mapping.Message = message
	mapping.Priority = req.Priority
	mapping.UpdatedAt = time.Now().UTC()
	if err := s.mappings.Update(mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// checkPriorityConflict rejects a priority already taken by another
// active mapping of the same (owner, emotion).
func (s *MappingService) checkPriorityConflict(ownerID, emotion string, priority int, excludeID string) error {
	active, err := s.mappings.ListActiveByUserAndEmotion(ownerID, emotion)
	if err != nil {
		return err
	}
	for _, other := range active {
		if other.ID == excludeID {
			continue
		}
		if other.Priority == priority {
			return models.NewDomainError(fmt.Sprintf(
				"Priority %d is already used by another active mapping for emotion %s", priority, emotion))
		}
	}
	return nil
}

// GetByID returns a mapping, including soft-deleted ones, gated by
// ownership.
func (s *MappingService) GetByID(id, requesterID, requesterRole string) (*models.EmotionMapping, error) {
	mapping, err := s.mappings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, models.NewDomainError("Mapping not found")
	}
	if err := RequireOwnership(mapping.UserID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	return mapping, nil
}

// ListByUser returns every mapping of a user, active or not.
func (s *MappingService) ListByUser(ownerID, requesterID, requesterRole string) ([]models.EmotionMapping, error) {
	if err := RequireOwnership(ownerID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	return s.mappings.ListByUser(ownerID)
}

// ListByUserAndEmotion returns a user's mappings for one emotion,
// active or not.
func (s *MappingService) ListByUserAndEmotion(ownerID, requesterID, requesterRole, emotion string) ([]models.EmotionMapping, error) {
	if err := RequireOwnership(ownerID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	normalized, err := models.ParseEmotion(emotion)
	if err != nil {
		return nil, err
	}
	return s.mappings.ListByUserAndEmotion(ownerID, normalized)
}

// ListActiveByUser returns only active mappings.
func (s *MappingService) ListActiveByUser(ownerID, requesterID, requesterRole string) ([]models.EmotionMapping, error) {
	if err := RequireOwnership(ownerID, requesterID, requesterRole); err != nil {
		return nil, err
	}
	return s.mappings.ListActiveByUser(ownerID)
}

// SoftDelete marks a mapping inactive. The row stays retrievable by id
// but stops matching and no longer counts against the limits.
func (s *MappingService) SoftDelete(id, requesterID, requesterRole string) error {
	mapping, err := s.mappings.GetByID(id)
	if err != nil {
		return err
	}
	if mapping == nil {
		return models.NewDomainError("Mapping not found")
	}
	if err := RequireOwnership(mapping.UserID, requesterID, requesterRole); err != nil {
		return err
	}

	mapping.Active = false
	mapping.UpdatedAt = time.Now().UTC()
	return s.mappings.Update(mapping)
}

// FindMatchingRule selects which active mapping a detection triggers.
// Every active mapping of (owner, emotion) is tested against the
// detected percentage; among the matches the one with the highest
// priority value wins (priority 2 beats priority 1). Returns nil when
// nothing matches.
func (s *MappingService) FindMatchingRule(ownerID, emotion string, percentage float64) (*models.EmotionMapping, error) {
	normalized := strings.ToLower(strings.TrimSpace(emotion))

	candidates, err := s.mappings.ListActiveByUserAndEmotion(ownerID, normalized)
	if err != nil {
		return nil, err
	}

	var best *models.EmotionMapping
	for i := range candidates {
		candidate := &candidates[i]
		if !candidate.Matches(percentage) {
			continue
		}
		if best == nil || candidate.Priority > best.Priority {
			best = candidate
		}
	}
	return best, nil
}
