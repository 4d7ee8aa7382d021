package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// CreateDriverInput defines the JSON input for registering a delivery
// driver. The format tags mirror the rules the admin screen applies, so a
// record can no longer be written around the UI.
type CreateDriverInput struct {
	Name        string `json:"name" binding:"required,person_name"`
	Mobile      string `json:"mobile" binding:"required,lk_mobile"`
	Address     string `json:"address" binding:"required,street_address"`
	VehicleID   string `json:"vehicleId" binding:"required,vehicle_id"`
	Category    string `json:"category" binding:"required,oneof=car truck bike"`
	OrderStatus string `json:"orderStatus" binding:"omitempty,oneof=pending in-progress completed"`
	NIC         string `json:"nic" binding:"required,nic"`
	Email       string `json:"email" binding:"required,email"`
	Image       string `json:"image"`
}

// UpdateDriverInput allows partial updates; only non-nil fields are written.
type UpdateDriverInput struct {
	Name           *string `json:"name" binding:"omitempty,person_name"`
	Mobile         *string `json:"mobile" binding:"omitempty,lk_mobile"`
	Address        *string `json:"address" binding:"omitempty,street_address"`
	VehicleID      *string `json:"vehicleId" binding:"omitempty,vehicle_id"`
	Category       *string `json:"category" binding:"omitempty,oneof=car truck bike"`
	OrderStatus    *string `json:"orderStatus" binding:"omitempty,oneof=pending in-progress completed"`
	NIC            *string `json:"nic" binding:"omitempty,nic"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Image          *string `json:"image"`
	AssignedOrders *string `json:"assignedOrders"`
}

const driverColumns = "id, name, mobile, address, vehicle_id, category, order_status, nic, email, image, assigned_orders, created_at, updated_at"

// CreateDriver is the handler for POST /api/drivers
func (h *Handlers) CreateDriver(c *gin.Context) {
	var input CreateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderStatus := input.OrderStatus
	if orderStatus == "" {
		orderStatus = models.OrderStatusPending
	}

	now := time.Now().UTC()
	driver := models.Driver{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Mobile:      input.Mobile,
		Address:     input.Address,
		VehicleID:   input.VehicleID,
		Category:    input.Category,
		OrderStatus: orderStatus,
		NIC:         input.NIC,
		Email:       input.Email,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO drivers
		(id, name, mobile, address, vehicle_id, category, order_status, nic, email, image, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		driver.ID, driver.Name, driver.Mobile, driver.Address, driver.VehicleID,
		driver.Category, driver.OrderStatus, driver.NIC, driver.Email, driver.Image,
		driver.CreatedAt, driver.UpdatedAt,
	)
	if err != nil {
		// drivers.email carries a unique index
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "A driver with this email already exists"})
			return
		}
		log.Printf("Error creating driver: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating driver"})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// GetDrivers is the handler for GET /api/drivers
func (h *Handlers) GetDrivers(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + driverColumns + " FROM drivers")
	if err != nil {
		log.Printf("Error fetching drivers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching drivers"})
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		driver, err := scanDriver(rows.Scan)
		if err != nil {
			log.Printf("Error scanning driver row: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching drivers"})
			return
		}
		drivers = append(drivers, *driver)
	}

	c.JSON(http.StatusOK, drivers)
}

// GetDriverByID is the handler for GET /api/drivers/:id
func (h *Handlers) GetDriverByID(c *gin.Context) {
	driver, err := h.fetchDriver(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		log.Printf("Error fetching driver: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching driver"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// UpdateDriver is the handler for PUT /api/drivers/:id
func (h *Handlers) UpdateDriver(c *gin.Context) {
	id := c.Param("id")

	var input UpdateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	querySet := "updated_at = ?"
	queryArgs := []interface{}{time.Now().UTC()}

	if input.Name != nil {
		querySet += ", name = ?"
		queryArgs = append(queryArgs, *input.Name)
	}
	if input.Mobile != nil {
		querySet += ", mobile = ?"
		queryArgs = append(queryArgs, *input.Mobile)
	}
	if input.Address != nil {
		querySet += ", address = ?"
		queryArgs = append(queryArgs, *input.Address)
	}
	if input.VehicleID != nil {
		querySet += ", vehicle_id = ?"
		queryArgs = append(queryArgs, *input.VehicleID)
	}
	if input.Category != nil {
		querySet += ", category = ?"
		queryArgs = append(queryArgs, *input.Category)
	}
	if input.OrderStatus != nil {
		querySet += ", order_status = ?"
		queryArgs = append(queryArgs, *input.OrderStatus)
	}
	if input.NIC != nil {
		querySet += ", nic = ?"
		queryArgs = append(queryArgs, *input.NIC)
	}
	if input.Email != nil {
		querySet += ", email = ?"
		queryArgs = append(queryArgs, *input.Email)
	}
	if input.Image != nil {
		querySet += ", image = ?"
		queryArgs = append(queryArgs, *input.Image)
	}
	if input.AssignedOrders != nil {
		querySet += ", assigned_orders = ?"
		queryArgs = append(queryArgs, *input.AssignedOrders)
	}
	queryArgs = append(queryArgs, id)

	_, err := h.DB.Exec("UPDATE drivers SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "A driver with this email already exists"})
			return
		}
		log.Printf("Error updating driver: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating driver"})
		return
	}

	driver, err := h.fetchDriver(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		log.Printf("Error fetching driver after update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating driver"})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// DeleteDriver is the handler for DELETE /api/drivers/:id
func (h *Handlers) DeleteDriver(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM drivers WHERE id = ?", c.Param("id"))
	if err != nil {
		log.Printf("Error deleting driver: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting driver"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}

func (h *Handlers) fetchDriver(id string) (*models.Driver, error) {
	row := h.DB.QueryRow("SELECT "+driverColumns+" FROM drivers WHERE id = ?", id)
	return scanDriver(row.Scan)
}

func scanDriver(scan func(dest ...interface{}) error) (*models.Driver, error) {
	var driver models.Driver
	var assigned sql.NullString
	err := scan(
		&driver.ID, &driver.Name, &driver.Mobile, &driver.Address, &driver.VehicleID,
		&driver.Category, &driver.OrderStatus, &driver.NIC, &driver.Email, &driver.Image,
		&assigned, &driver.CreatedAt, &driver.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assigned.Valid {
		driver.AssignedOrders = &assigned.String
	}
	return &driver, nil
}
