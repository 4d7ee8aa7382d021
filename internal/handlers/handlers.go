package handlers

import (
	"database/sql"

	"github.com/freshmart-dev/freshmart-golang/internal/ai"
	"github.com/redis/go-redis/v9"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB        *sql.DB
	Cache     *redis.Client // optional; nil disables the item-list cache
	AIService *ai.AIService // optional; nil disables the promo assistant
}
