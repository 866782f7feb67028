package models

import (
	"time"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the caller's own password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UpdateUserRequest patches profile fields; empty fields are left alone.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PatientRequest creates or updates a patient record.
type PatientRequest struct {
	Name      string     `json:"name" binding:"required"`
	BirthDate *time.Time `json:"birthDate"`
	Condition string     `json:"condition"`
	Notes     string     `json:"notes"`
}

// MappingRequest creates or updates an emotion mapping. Emotion and
// intensity accept any casing; intensity also accepts the synonym
// spellings "superior" and "inferior".
type MappingRequest struct {
	Emotion       string  `json:"emotion" binding:"required"`
	Intensity     string  `json:"intensity" binding:"required"`
	MinPercentage float64 `json:"minPercentage"`
	Message       string  `json:"message" binding:"required"`
	Priority      int     `json:"priority" binding:"required"`
}

// DetectionRequest reports one detection event: the full map of
// detected emotion percentages, optionally tied to a patient.
type DetectionRequest struct {
	PatientID string             `json:"patientId"`
	Emotions  map[string]float64 `json:"emotions" binding:"required"`
	Timestamp *time.Time         `json:"timestamp"`
}

// ForgotPasswordRequest starts the reset flow by emailing a code.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes an emailed code and sets a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}
