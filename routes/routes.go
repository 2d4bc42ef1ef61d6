package routes

import (
	"net/http"
	"time"

	"cinebook/handlers"
	"cinebook/middleware"
	"cinebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterMovieRoutes registers catalog browsing endpoints.
func RegisterMovieRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/movies")
	{
		api.GET("", hb.Movies.ListMovies)
		api.GET("/:id", hb.Movies.GetMovieByID)
	}
}

// RegisterShowtimeRoutes registers showtime endpoints. None carry an
// authorization check, including creation.
func RegisterShowtimeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/showtimes")
	{
		api.GET("/movie/:movieId", hb.Showtimes.ListForMovie)
		api.GET("/:id", hb.Showtimes.GetByID)
		api.POST("", hb.Showtimes.Create)
	}
}

// RegisterBookingRoutes registers the booking endpoints. All of them require
// a verified identity.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("/my-bookings", hb.Bookings.ListMyBookings)
		api.GET("/:id", hb.Bookings.GetBookingByID)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterMovieRoutes(r, hb)
	RegisterShowtimeRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
