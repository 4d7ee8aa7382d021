package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// itemListCacheKey is the Redis key for the storefront item listing. Every
// item mutation drops it; the next list request repopulates it.
const itemListCacheKey = "items:all"

const itemListCacheTTL = 60 * time.Second

// CreateItemInput defines the JSON input for creating an item.
// All four fields are required; quantity zero is a valid starting stock, so
// it is a pointer to survive the 'required' binding.
type CreateItemInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Image    string `json:"image" binding:"required"`
}

// UpdateItemInput allows partial updates; only non-nil fields are written.
type UpdateItemInput struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Price    *string `json:"price"`
	Image    *string `json:"image"`
}

// UpdateInventoryInput carries the signed delta for the decrement endpoint.
// Negative for consumption; a positive delta restocks. No floor is applied,
// so quantity can go negative.
type UpdateInventoryInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CreateItem is the handler for POST /api/items
func (h *Handlers) CreateItem(c *gin.Context) {
	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	now := time.Now().UTC()
	item := models.Item{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Quantity:  *input.Quantity,
		Price:     input.Price,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO items
		(id, name, quantity, price, image, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query, item.ID, item.Name, item.Quantity, item.Price, item.Image, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating item"})
		return
	}

	h.invalidateItemCache(c)

	c.JSON(http.StatusCreated, item)
}

// GetItems is the handler for GET /api/items
// The full listing is cached in Redis for a short TTL; the storefront polls
// this on every page mount.
func (h *Handlers) GetItems(c *gin.Context) {
	if h.Cache != nil {
		if cached, err := h.Cache.Get(c.Request.Context(), itemListCacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	rows, err := h.DB.Query("SELECT id, name, quantity, price, image, created_at, updated_at FROM items")
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items"})
		return
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Image, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Printf("Error scanning item row: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching items"})
			return
		}
		items = append(items, item)
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := h.Cache.Set(c.Request.Context(), itemListCacheKey, payload, itemListCacheTTL).Err(); err != nil {
				log.Printf("Warning: failed to cache item list: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, items)
}

// GetItemByID is the handler for GET /api/items/:id
func (h *Handlers) GetItemByID(c *gin.Context) {
	item, err := h.fetchItem(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("Error fetching item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem is the handler for PUT /api/items/:id
// Matching fields are replaced; omitted fields keep their stored values.
func (h *Handlers) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	var input UpdateItemInput
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
	if input.Quantity != nil {
		querySet += ", quantity = ?"
		queryArgs = append(queryArgs, *input.Quantity)
	}
	if input.Price != nil {
		querySet += ", price = ?"
		queryArgs = append(queryArgs, *input.Price)
	}
	if input.Image != nil {
		querySet += ", image = ?"
		queryArgs = append(queryArgs, *input.Image)
	}
	queryArgs = append(queryArgs, id)

	_, err := h.DB.Exec("UPDATE items SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		log.Printf("Error updating item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating item"})
		return
	}

	item, err := h.fetchItem(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("Error fetching item after update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating item"})
		return
	}

	h.invalidateItemCache(c)

	c.JSON(http.StatusOK, item)
}

// DeleteItem is the handler for DELETE /api/items/:id
func (h *Handlers) DeleteItem(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM items WHERE id = ?", c.Param("id"))
	if err != nil {
		log.Printf("Error deleting item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting item"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	h.invalidateItemCache(c)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// UpdateInventory is the handler for PATCH /api/update-inventory/:id
// The delta is applied in a single UPDATE expression so concurrent
// decrements serialize at the store and never lose updates.
func (h *Handlers) UpdateInventory(c *gin.Context) {
	id := c.Param("id")

	var input UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	result, err := h.DB.ExecContext(ctx,
		"UPDATE items SET quantity = quantity + ?, updated_at = ? WHERE id = ?",
		*input.Quantity, time.Now().UTC(), id,
	)
	if err != nil {
		log.Printf("Error updating inventory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating inventory"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := h.fetchItem(id)
	if err != nil {
		log.Printf("Error fetching item after inventory update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating inventory"})
		return
	}

	h.invalidateItemCache(c)

	c.JSON(http.StatusOK, item)
}

func (h *Handlers) fetchItem(id string) (*models.Item, error) {
	var item models.Item
	err := h.DB.QueryRow(
		"SELECT id, name, quantity, price, image, created_at, updated_at FROM items WHERE id = ?", id,
	).Scan(&item.ID, &item.Name, &item.Quantity, &item.Price, &item.Image, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (h *Handlers) invalidateItemCache(c *gin.Context) {
	if h.Cache == nil {
		return
	}
	if err := h.Cache.Del(c.Request.Context(), itemListCacheKey).Err(); err != nil {
		log.Printf("Warning: failed to invalidate item cache: %v", err)
	}
}
