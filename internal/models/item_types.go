package models

import (
	"time"
)

// Item is the model for the 'items' table (store inventory).
// NOTE: Price is deliberately a STRING. The existing stored data and every
// frontend consumer treat price as a numeric string ("19.99"), so we keep
// that wire shape instead of switching to a float.
type Item struct {
	ID        string    `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     string    `json:"price" db:"price"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
