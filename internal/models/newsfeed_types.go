package models

import (
	"time"
)

// NewsFeed is the model for the 'news_feeds' table (promotions shown on the
// storefront news page). ItemID is unique across feeds: one live promotion
// per item, enforced by a unique index.
type NewsFeed struct {
	ID          string    `json:"_id" db:"id"`
	ItemID      string    `json:"itemId" db:"item_id"`
	Discount    float64   `json:"discount" db:"discount"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
