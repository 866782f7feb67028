package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SinOutGo/models"
	"SinOutGo/services"
)

// UserController exposes profile reads/updates and the admin user
// directory.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetMe returns the caller's own profile.
func (uc *UserController) GetMe(c *gin.Context) {
	user, err := uc.users.GetByID(c.GetString("uid"), c.GetString("uid"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// GetUser returns a profile by id; non-admins only reach their own.
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.users.GetByID(c.Param("id"), c.GetString("uid"), c.GetString("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// UpdateUser patches profile fields.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := uc.users.UpdateProfile(c.Param("id"), c.GetString("uid"), c.GetString("role"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// ListUsers is admin-only (gated in the routes).
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, models.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteUser removes an account; non-admins only their own.
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.users.Delete(c.Param("id"), c.GetString("uid"), c.GetString("role")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
