package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"SinOutGo/models"
	"SinOutGo/repositories"
	"SinOutGo/utils"
)

// Lockout policy. Both values are contractual: five straight failures
// lock the account for fifteen minutes.
const (
	MaxFailedLoginAttempts = 5
	LockoutDuration        = 15 * time.Minute
)

// AuthService handles registration, login and the account-lockout
// state machine.
type AuthService struct {
	users repositories.UserRepository
	now   func() time.Time
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

// Register creates an account after checking the email is free. The
// role defaults to Cuidador; only Admin and Cuidador are accepted.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDomainError("Email is already registered")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCuidador
	}
	if role != models.RoleAdmin && role != models.RoleCuidador {
		return nil, models.NewDomainError(fmt.Sprintf("Invalid role: %s", req.Role))
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           utils.GenerateID(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user, applying the lockout policy:
//   - a locked account rejects immediately, without consulting the
//     password, until the lockout expires;
//   - the fifth consecutive failure locks the account for fifteen
//     minutes and resets the counter;
//   - success clears the counter and lockout and stamps LastLogin.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	now := s.now()

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewDomainError("Invalid email or password")
	}

	if user.IsLockedOut(now) {
		remaining := int(math.Ceil(user.LockoutUntil.Sub(now).Minutes()))
		return nil, models.NewDomainError(fmt.Sprintf(
			"Account locked. Try again in %d minutes", remaining))
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= MaxFailedLoginAttempts {
			until := now.Add(LockoutDuration)
			user.LockoutUntil = &until
			user.FailedLoginAttempts = 0
		}
		if err := s.users.Update(user); err != nil {
			return nil, err
		}
		return nil, models.NewDomainError("Invalid email or password")
	}

	user.FailedLoginAttempts = 0
	user.LockoutUntil = nil
	user.LastLogin = &now
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewDomainError("User not found")
	}

	if !utils.CheckPassword(currentPassword, user.PasswordHash) {
		return models.NewDomainError("Current password is incorrect")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}
