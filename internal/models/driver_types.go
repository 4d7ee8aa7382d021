package models

import (
	"time"
)

// Driver categories and delivery statuses are closed sets. The DB columns
// are plain VARCHARs; the API layer enforces these with 'oneof' bindings.
const (
	DriverCategoryCar   = "car"
	DriverCategoryTruck = "truck"
	DriverCategoryBike  = "bike"

	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
)

// Driver is the model for the 'drivers' table (delivery staff).
type Driver struct {
	ID             string    `json:"_id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Mobile         string    `json:"mobile" db:"mobile"`
	Address        string    `json:"address" db:"address"`
	VehicleID      string    `json:"vehicleId" db:"vehicle_id"`
	Category       string    `json:"category" db:"category"`
	OrderStatus    string    `json:"orderStatus" db:"order_status"`
	NIC            string    `json:"nic" db:"nic"`
	Email          string    `json:"email" db:"email"`
	Image          string    `json:"image" db:"image"`
	AssignedOrders *string   `json:"assignedOrders" db:"assigned_orders"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
