package user

import (
	"context"
	"fmt"
	"time"

	"cinebook/config"
	"cinebook/models"
	"cinebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func tokenTTL() time.Duration {
	hours := config.AppConfig.TokenTTLHours
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}

// RegisterUser creates a new user, generates a token, and stores its hash on
// the record and in the auth cache.
func (s *DefaultUserService) RegisterUser(user models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = "" // Clear plain-text password

	user.ID = uuid.New().String()

	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&user)
}

// AuthenticateUser verifies the password and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: Failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(userRec)
}

// issueToken signs a JWT for the user and records its hash for the auth
// middleware: on the user document, and best-effort in the auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	ttl := tokenTTL()
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, ttl)
	if err != nil {
		utils.GetLogger().Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := s.AuthCache.Set(context.Background(), cacheKey, tokenHash, ttl).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
	}, nil
}
