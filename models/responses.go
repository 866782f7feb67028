package models

import "time"

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewUserResponse strips credential and lockout state off a User.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse carries the bearer token plus the account it belongs to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// DetectionResponse reports the outcome of one detection event.
type DetectionResponse struct {
	RecordID           string  `json:"recordId"`
	DominantEmotion    string  `json:"dominantEmotion"`
	DominantPercentage float64 `json:"dominantPercentage"`
	TriggeredMessage   string  `json:"triggeredMessage,omitempty"`
	TriggeredRuleID    string  `json:"triggeredRuleId,omitempty"`
}

// MessageResponse is the generic {message} envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
