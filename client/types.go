package client

import (
	"time"
)

// Wire types. Field names and typing match the stored JSON exactly; note
// that Item.Price is a numeric string, not a number.

type Item struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Driver struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Address        string    `json:"address"`
	VehicleID      string    `json:"vehicleId"`
	Category       string    `json:"category"`
	OrderStatus    string    `json:"orderStatus"`
	NIC            string    `json:"nic"`
	Email          string    `json:"email"`
	Image          string    `json:"image"`
	AssignedOrders *string   `json:"assignedOrders"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Supplier struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Mobile    string    `json:"mobile"`
	ItemID    string    `json:"itemId"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewsFeed struct {
	ID          string    `json:"_id"`
	ItemID      string    `json:"itemId"`
	Discount    float64   `json:"discount"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Order struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Mobile      string    `json:"mobile"`
	TotalAmount float64   `json:"totalAmount"`
	UserID      string    `json:"userId"`
	Items       string    `json:"items"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Input types. Identifiers are never client-minted, so inputs carry no id.

type ItemInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

type DriverInput struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Address     string `json:"address"`
	VehicleID   string `json:"vehicleId"`
	Category    string `json:"category"`
	OrderStatus string `json:"orderStatus,omitempty"`
	NIC         string `json:"nic"`
	Email       string `json:"email"`
	Image       string `json:"image,omitempty"`
}

type SupplierInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	ItemID  string `json:"itemId"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type NewsFeedInput struct {
	ItemID      string  `json:"itemId"`
	Discount    float64 `json:"discount"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
