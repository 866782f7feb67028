package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SinOutGo/models"
)

func newTestUserService(t *testing.T) (*UserService, *fakeUserRepo) {
	t.Helper()

	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(&models.User{
		ID:    "user-1",
		Name:  "Maria",
		Email: "maria@example.com",
		Role:  models.RoleCuidador,
	}))
	require.NoError(t, repo.Create(&models.User{
		ID:    "user-2",
		Name:  "Joao",
		Email: "joao@example.com",
		Role:  models.RoleCuidador,
	}))
	return NewUserService(repo), repo
}

func TestGetUserDeniesForeignRequester(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.GetByID("user-1", "user-2", models.RoleCuidador)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Access denied", domainErr.Message)

	user, err := svc.GetByID("user-1", "admin-1", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
}

func TestUpdateProfileKeepsBlankFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.UpdateProfile("user-1", "user-1", models.RoleCuidador, models.UpdateUserRequest{
		Name: "Maria Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.UpdateProfile("user-1", "user-1", models.RoleCuidador, models.UpdateUserRequest{
		Email: "Joao@Example.com",
	})
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Email is already registered", domainErr.Message)
}

func TestDeleteUserGatedByOwnership(t *testing.T) {
	svc, repo := newTestUserService(t)

	err := svc.Delete("user-1", "user-2", models.RoleCuidador)
	var domainErr *models.DomainError
	require.ErrorAs(t, err, &domainErr)

	require.NoError(t, svc.Delete("user-1", "user-1", models.RoleCuidador))
	gone, err := repo.GetByID("user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
