package models

import (
	"time"
)

// Roles known to the API.
const (
	RoleAdmin    = "Admin"
	RoleCuidador = "Cuidador"
)

// User is a registered account. Cuidador users own patients, emotion
// mappings and history records; Admin users bypass ownership checks.
type User struct {
	ID                  string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name                string     `gorm:"type:varchar(100)" json:"name"`
	Email               string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Phone               string     `gorm:"type:varchar(30)" json:"phone"`
	Role                string     `gorm:"type:varchar(20);default:'Cuidador'" json:"role"`
	PasswordHash        string     `gorm:"type:varchar(255)" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockoutUntil        *time.Time `json:"-"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IsLockedOut reports whether the account is still inside a lockout window.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutUntil != nil && now.Before(*u.LockoutUntil)
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
