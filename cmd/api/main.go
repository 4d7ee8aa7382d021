package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/ai"
	"github.com/freshmart-dev/freshmart-golang/internal/database"
	"github.com/freshmart-dev/freshmart-golang/internal/handlers"
	"github.com/freshmart-dev/freshmart-golang/internal/routes"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Redis (item-list cache, optional) ---
	var cache *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: addr})
		if _, err := cache.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis at %s: %v", addr, err)
		}
		log.Println("Redis cache connected")
	} else {
		log.Println("WARNING: REDIS_ADDR not set, item-list caching disabled.")
	}

	// 3. --- AI Promo Assistant (optional) ---
	var aiService *ai.AIService
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		aiService, err = ai.NewAIService(geminiKey)
		if err != nil {
			log.Fatalf("Failed to initialize AI Service: %v", err)
		}
	} else {
		log.Println("WARNING: GEMINI_API_KEY not set, promo assistant disabled.")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:        db,
		Cache:     cache,
		AIService: aiService,
	}

	// --- 4. Background Worker ---
	// News-feed promotions go stale; sweep them once an hour.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background worker started: sweeping stale promotions...")

		for range ticker.C {
			app.ExpireStalePromotions(30 * 24 * time.Hour)
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting FreshMart API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
