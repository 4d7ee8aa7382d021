package models

import (
	"time"
)

// Order is the model for the 'orders' table. The storefront checkout is
// single-item: Items holds the purchased item's NAME (not an id), and
// TotalAmount is the item's price at order time. That is the shape the
// existing frontend writes and reads, so it stays.
type Order struct {
	ID          string    `json:"_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	Mobile      string    `json:"mobile" db:"mobile"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	UserID      string    `json:"userId" db:"user_id"`
	Items       string    `json:"items" db:"items"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Checkout result kinds. PlaceOrder persists the order first and decrements
// inventory second; the two steps can fail independently, and callers must
// tell the third case apart from the first two.
const (
	CheckoutSuccess         = "success"
	CheckoutOrderFailed     = "order_failed"
	CheckoutInventoryFailed = "inventory_failed"
)
