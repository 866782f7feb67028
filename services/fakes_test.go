package services

import (
	"errors"
	"sync"
	"time"

	"SinOutGo/models"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeMappingRepo struct {
	mu       sync.Mutex
	mappings map[string]*models.EmotionMapping
}

func newFakeMappingRepo() *fakeMappingRepo {
	return &fakeMappingRepo{mappings: make(map[string]*models.EmotionMapping)}
}

func (f *fakeMappingRepo) GetByID(id string) (*models.EmotionMapping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.mappings[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMappingRepo) ListByUser(userID string) ([]models.EmotionMapping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.EmotionMapping
	for _, m := range f.mappings {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMappingRepo) ListByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.EmotionMapping
	for _, m := range f.mappings {
		if m.UserID == userID && m.Emotion == emotion {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMappingRepo) ListActiveByUser(userID string) ([]models.EmotionMapping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.EmotionMapping
	for _, m := range f.mappings {
		if m.UserID == userID && m.Active {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMappingRepo) ListActiveByUserAndEmotion(userID, emotion string) ([]models.EmotionMapping, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.EmotionMapping
	// Priority ascending, like the gorm implementation.
	for priority := models.MinPriority; priority <= models.MaxPriority; priority++ {
		for _, m := range f.mappings {
			if m.UserID == userID && m.Emotion == emotion && m.Active && m.Priority == priority {
				out = append(out, *m)
			}
		}
	}
	return out, nil
}

func (f *fakeMappingRepo) CountActiveByUserAndEmotion(userID, emotion string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, m := range f.mappings {
		if m.UserID == userID && m.Emotion == emotion && m.Active {
			count++
		}
	}
	return count, nil
}

func (f *fakeMappingRepo) Create(mapping *models.EmotionMapping) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *mapping
	f.mappings[mapping.ID] = &copied
	return nil
}

func (f *fakeMappingRepo) Update(mapping *models.EmotionMapping) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *mapping
	f.mappings[mapping.ID] = &copied
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []models.HistoryRecord
}

func (f *fakeHistoryRepo) Create(record *models.HistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHistoryRepo) ListByUserSince(userID string, since time.Time) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.HistoryRecord
	for _, r := range f.records {
		if r.UserID == userID && !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListByPatientSince(patientID string, since time.Time) ([]models.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.HistoryRecord
	for _, r := range f.records {
		if r.PatientID == patientID && !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []models.HistoryRecord
	var deleted int64
	for _, r := range f.records {
		if r.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return deleted, nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.PasswordResetToken
	failOn bool
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.PasswordResetToken)}
}

func (f *fakeTokenRepo) Create(token *models.PasswordResetToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *token
	f.tokens[token.ID] = &copied
	return nil
}

func (f *fakeTokenRepo) GetByEmailAndCode(email, code string) (*models.PasswordResetToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.PasswordResetToken
	for _, t := range f.tokens {
		if t.Email == email && t.Code == code {
			if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
				latest = t
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeTokenRepo) MarkUsed(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tokens[id]; ok {
		t.Used = true
	}
	return nil
}

func (f *fakeTokenRepo) DeleteExpired(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn {
		return 0, errors.New("store unreachable")
	}
	var deleted int64
	for id, t := range f.tokens {
		if t.Used || now.After(t.ExpiresAt) {
			delete(f.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeEmailSender struct {
	mu            sync.Mutex
	resetCodes    []string
	resetTargets  []string
	noticeTargets []string
}

func (f *fakeEmailSender) SendPasswordResetCode(toEmail, code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetTargets = append(f.resetTargets, toEmail)
	f.resetCodes = append(f.resetCodes, code)
}

func (f *fakeEmailSender) SendPasswordChangedNotice(toEmail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noticeTargets = append(f.noticeTargets, toEmail)
}

func (f *fakeEmailSender) lastResetCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.resetCodes) == 0 {
		return ""
	}
	return f.resetCodes[len(f.resetCodes)-1]
}
