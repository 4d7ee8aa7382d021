package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSupplierInput defines the JSON input for adding a supplier.
type CreateSupplierInput struct {
	Name    string `json:"name" binding:"required,person_name"`
	Address string `json:"address" binding:"required,street_address"`
	Mobile  string `json:"mobile" binding:"required,lk_mobile"`
	ItemID  string `json:"itemId" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company" binding:"required"`
}

// UpdateSupplierInput allows partial updates.
type UpdateSupplierInput struct {
	Name    *string `json:"name" binding:"omitempty,person_name"`
	Address *string `json:"address" binding:"omitempty,street_address"`
	Mobile  *string `json:"mobile" binding:"omitempty,lk_mobile"`
	ItemID  *string `json:"itemId"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company"`
}

const supplierColumns = "id, name, address, mobile, item_id, email, company, created_at, updated_at"

// CreateSupplier is the handler for POST /api/suppliers
func (h *Handlers) CreateSupplier(c *gin.Context) {
	var input CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	supplier := models.Supplier{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Address:   input.Address,
		Mobile:    input.Mobile,
		ItemID:    input.ItemID,
		Email:     input.Email,
		Company:   input.Company,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO suppliers
		(id, name, address, mobile, item_id, email, company, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		supplier.ID, supplier.Name, supplier.Address, supplier.Mobile,
		supplier.ItemID, supplier.Email, supplier.Company,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating supplier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating supplier"})
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

// GetSuppliers is the handler for GET /api/suppliers
func (h *Handlers) GetSuppliers(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + supplierColumns + " FROM suppliers")
	if err != nil {
		log.Printf("Error fetching suppliers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching suppliers"})
		return
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Mobile, &s.ItemID, &s.Email, &s.Company, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error scanning supplier row: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching suppliers"})
			return
		}
		suppliers = append(suppliers, s)
	}

	c.JSON(http.StatusOK, suppliers)
}

// GetSupplierByID is the handler for GET /api/suppliers/:id
func (h *Handlers) GetSupplierByID(c *gin.Context) {
	supplier, err := h.fetchSupplier(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		log.Printf("Error fetching supplier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching supplier"})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// UpdateSupplier is the handler for PUT /api/suppliers/:id
func (h *Handlers) UpdateSupplier(c *gin.Context) {
	id := c.Param("id")

	var input UpdateSupplierInput
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
	if input.Address != nil {
		querySet += ", address = ?"
		queryArgs = append(queryArgs, *input.Address)
	}
	if input.Mobile != nil {
		querySet += ", mobile = ?"
		queryArgs = append(queryArgs, *input.Mobile)
	}
	if input.ItemID != nil {
		querySet += ", item_id = ?"
		queryArgs = append(queryArgs, *input.ItemID)
	}
	if input.Email != nil {
		querySet += ", email = ?"
		queryArgs = append(queryArgs, *input.Email)
	}
	if input.Company != nil {
		querySet += ", company = ?"
		queryArgs = append(queryArgs, *input.Company)
	}
	queryArgs = append(queryArgs, id)

	_, err := h.DB.Exec("UPDATE suppliers SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		log.Printf("Error updating supplier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating supplier"})
		return
	}

	supplier, err := h.fetchSupplier(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		log.Printf("Error fetching supplier after update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating supplier"})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier is the handler for DELETE /api/suppliers/:id
func (h *Handlers) DeleteSupplier(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM suppliers WHERE id = ?", c.Param("id"))
	if err != nil {
		log.Printf("Error deleting supplier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting supplier"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

func (h *Handlers) fetchSupplier(id string) (*models.Supplier, error) {
	var s models.Supplier
	err := h.DB.QueryRow("SELECT "+supplierColumns+" FROM suppliers WHERE id = ?", id).Scan(
		&s.ID, &s.Name, &s.Address, &s.Mobile, &s.ItemID, &s.Email, &s.Company, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
