package handlers

import (
	userRepo "cinebook/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the handlers and the collaborators route registration
// needs (the user repository and auth cache feed the auth middleware).
type HandlerBundle struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client

	Auth      *AuthHandler
	Movies    *MovieHandler
	Showtimes *ShowtimeHandler
	Bookings  *BookingHandler
}
