package models

import (
	"time"
)

// Supplier is the model for the 'suppliers' table.
// ItemID is an opaque reference to an Item; nothing enforces that the item
// actually exists (same contract as the rest of the cross-collection refs).
type Supplier struct {
	ID        string    `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Mobile    string    `json:"mobile" db:"mobile"`
	ItemID    string    `json:"itemId" db:"item_id"`
	Email     string    `json:"email" db:"email"`
	Company   string    `json:"company" db:"company"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
