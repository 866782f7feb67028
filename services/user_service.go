package services

import (
	"strings"

	"SinOutGo/models"
	"SinOutGo/repositories"
)

// UserService covers profile reads/updates and the admin-only
// directory operations.
type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(id, requesterID, requesterRole string) (*models.User, error) {
	if err := RequireOwnership(id, requesterID, requesterRole); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewDomainError("User not found")
	}
	return user, nil
}

// UpdateProfile patches the mutable profile fields; blank fields keep
// their current value. A changed email must still be unique.
func (s *UserService) UpdateProfile(id, requesterID, requesterRole string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(id, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			existing, err := s.users.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, models.NewDomainError("Email is already registered")
			}
			user.Email = email
		}
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAll is admin-only; the role gate sits in the route middleware,
// this is just the directory read.
func (s *UserService) ListAll() ([]models.User, error) {
	return s.users.ListAll()
}

func (s *UserService) Delete(id, requesterID, requesterRole string) error {
	if err := RequireOwnership(id, requesterID, requesterRole); err != nil {
		return err
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewDomainError("User not found")
	}
	return s.users.Delete(id)
}
