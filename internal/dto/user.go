package dto

import (
	"time"

	"github.com/yukikurage/todolist-api/internal/models"
)

// UserDTO is the public projection of a user. It never carries the password
// hash.
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// UserResponse is returned by me
type UserResponse struct {
	User UserDTO `json:"user"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
