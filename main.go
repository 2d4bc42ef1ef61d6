package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinebook/config"
	"cinebook/database"
	bookingRepoPkg "cinebook/database/repository/booking"
	movieRepoPkg "cinebook/database/repository/movie"
	showtimeRepoPkg "cinebook/database/repository/showtime"
	userRepoPkg "cinebook/database/repository/user"
	"cinebook/handlers"
	"cinebook/middleware"
	"cinebook/routes"
	"cinebook/services/booking"
	"cinebook/services/movie"
	"cinebook/services/showtime"
	"cinebook/services/user"
	"cinebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(client)
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, client)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	movieRepo := movieRepoPkg.NewMongoMovieRepo(db)
	showtimeRepo := showtimeRepoPkg.NewMongoShowtimeRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	movieService := &movie.DefaultMovieService{
		Repo:  movieRepo,
		Cache: utils.GetCacheClient(),
	}
	showtimeService := &showtime.DefaultShowtimeService{
		Showtimes: showtimeRepo,
		Movies:    movieRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Showtimes: showtimeRepo,
		Movies:    movieRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Auth:      handlers.NewAuthHandler(userService, logger),
		Movies:    handlers.NewMovieHandler(movieService, logger),
		Showtimes: handlers.NewShowtimeHandler(showtimeService, logger),
		Bookings:  handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
