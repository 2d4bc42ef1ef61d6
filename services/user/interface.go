package user

import (
	"errors"

	userRepo "cinebook/database/repository/user"
	"cinebook/models"

	"github.com/go-redis/redis/v8"
)

// ErrInvalidCredentials is returned when email/password verification fails.
// The message is deliberately the same for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserService defines registration and authentication.
type UserService interface {
	// RegisterUser creates a new account and returns a signed token.
	RegisterUser(user models.User) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a signed token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
}

// DefaultUserService is the production implementation. AuthCache is optional;
// when nil token hashes are only kept on the user record.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
