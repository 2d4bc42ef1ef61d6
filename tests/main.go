// Seeds the catalog and showtimes for local development.
package main

import (
	"context"
	"log"
	"time"

	"cinebook/config"
	"cinebook/database"
	"cinebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Disconnect(client)
	db := client.Database(config.AppConfig.DatabaseName)

	movieColl := db.Collection("movies")
	showtimeColl := db.Collection("showtimes")
	userColl := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing catalog data.
	if _, err := movieColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear movies collection: %v", err)
	}
	if _, err := showtimeColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear showtimes collection: %v", err)
	}

	now := time.Now()
	movies := []models.Movie{
		{
			Title:       "Disney",
			Genre:       "Action | Thriller",
			Duration:    135,
			Language:    "English",
			Rating:      8.7,
			Description: "A rogue agent races against time to expose a global conspiracy before it plunges the world into chaos. Featuring breathtaking stunts and non-stop action.",
			PosterURL:   "assets/posters/movie1.png",
			ReleaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Pocahontas",
			Genre:       "Sci-Fi | Adventure",
			Duration:    150,
			Language:    "English",
			Rating:      9.1,
			Description: "A lone starship captain undertakes a perilous journey across the galaxy to find the source of a mysterious signal that could save or doom humanity.",
			PosterURL:   "assets/posters/movie2.png",
			ReleaseDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Dora And The Lost City Of Gold",
			Genre:       "Mystery | Drama",
			Duration:    110,
			Language:    "Hindi",
			Rating:      7.5,
			Description: "When a small-town detective encounters a cryptic witness, the case leads him down a dark path uncovering secrets buried for decades.",
			PosterURL:   "assets/posters/movie3.png",
			ReleaseDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "The Assassin",
			Genre:       "Cyberpunk | Action",
			Duration:    120,
			Language:    "Japanese",
			Rating:      8.0,
			Description: "In a rain-soaked futuristic metropolis, a cybernetically enhanced samurai seeks revenge against the mega-corporation that built him.",
			PosterURL:   "assets/posters/movie4.png",
			ReleaseDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "She Came To Me",
			Genre:       "Horror | Supernatural",
			Duration:    95,
			Language:    "Spanish",
			Rating:      6.9,
			Description: "A group of archaeologists awakens an ancient curse in a remote jungle temple, trapping them in a nightmare where reality blurs with myth.",
			PosterURL:   "assets/posters/movie5.png",
			ReleaseDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	var movieDocs []interface{}
	for i := range movies {
		movies[i].ID = uuid.New().String()
		movies[i].IsActive = true
		movies[i].CreatedAt = now
		movies[i].UpdatedAt = now
		movieDocs = append(movieDocs, movies[i])
	}
	if _, err := movieColl.InsertMany(ctx, movieDocs); err != nil {
		log.Fatalf("Failed to insert movies: %v", err)
	}
	log.Printf("Created %d movies", len(movieDocs))

	// Four showtimes per movie across halls, staggered over the next days.
	var showtimeDocs []interface{}
	for index, m := range movies {
		day := now.AddDate(0, 0, index)
		nextDay := now.AddDate(0, 0, index+1)
		slots := []models.Showtime{
			{MovieID: m.ID, Date: day, Time: "10:00 AM", Price: 400.00, Hall: "Hall A", TotalSeats: 80, AvailableSeats: 80 - index*10},
			{MovieID: m.ID, Date: day, Time: "02:30 PM", Price: 300.00, Hall: "Hall B", TotalSeats: 80, AvailableSeats: 80 - index*15},
			{MovieID: m.ID, Date: nextDay, Time: "06:00 PM", Price: 400.00, Hall: "Hall C", TotalSeats: 80, AvailableSeats: 80 - index*8},
			{MovieID: m.ID, Date: nextDay, Time: "09:30 PM", Price: 200.00, Hall: "Premium Hall", TotalSeats: 50, AvailableSeats: 50 - index*5},
		}
		for i := range slots {
			slots[i].ID = uuid.New().String()
			slots[i].CreatedAt = now
			slots[i].UpdatedAt = now
			showtimeDocs = append(showtimeDocs, slots[i])
		}
	}
	if _, err := showtimeColl.InsertMany(ctx, showtimeDocs); err != nil {
		log.Fatalf("Failed to insert showtimes: %v", err)
	}
	log.Printf("Created %d showtimes", len(showtimeDocs))

	// Demo account for manual testing; skipped when it already exists.
	count, err := userColl.CountDocuments(ctx, bson.M{"email": "demo@cinebook.local"})
	if err != nil {
		log.Fatalf("Failed to check demo user: %v", err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		demo := models.User{
			ID:           uuid.New().String(),
			Name:         "Demo User",
			Email:        "demo@cinebook.local",
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := userColl.InsertOne(ctx, demo); err != nil {
			log.Fatalf("Failed to insert demo user: %v", err)
		}
		log.Println("Created demo user")
	}

	log.Println("Database seeded successfully!")
}
