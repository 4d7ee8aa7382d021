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

// CreateNewsFeedInput defines the JSON input for a promotion entry.
// Discount is a percentage between 0.1 and 100; the short description fits
// the storefront card, hence the 50 character cap.
type CreateNewsFeedInput struct {
	ItemID      string  `json:"itemId" binding:"required"`
	Discount    float64 `json:"discount" binding:"required,gte=0.1,lte=100"`
	Description string  `json:"description" binding:"required,max=50"`
	Image       string  `json:"image" binding:"required"`
}

// UpdateNewsFeedInput allows partial updates.
type UpdateNewsFeedInput struct {
	ItemID      *string  `json:"itemId"`
	Discount    *float64 `json:"discount" binding:"omitempty,gte=0.1,lte=100"`
	Description *string  `json:"description" binding:"omitempty,max=50"`
	Image       *string  `json:"image"`
}

const newsFeedColumns = "id, item_id, discount, description, image, created_at, updated_at"

// CreateNewsFeed is the handler for POST /api/newsfeeds
// One promotion per item: news_feeds.item_id carries a unique index.
func (h *Handlers) CreateNewsFeed(c *gin.Context) {
	var input CreateNewsFeedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	feed := models.NewsFeed{
		ID:          uuid.New().String(),
		ItemID:      input.ItemID,
		Discount:    input.Discount,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO news_feeds
		(id, item_id, discount, description, image, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query, feed.ID, feed.ItemID, feed.Discount, feed.Description, feed.Image, feed.CreatedAt, feed.UpdatedAt)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "A news feed for this item already exists"})
			return
		}
		log.Printf("Error creating news feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating news feed"})
		return
	}

	c.JSON(http.StatusCreated, feed)
}

// GetNewsFeeds is the handler for GET /api/newsfeeds
func (h *Handlers) GetNewsFeeds(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + newsFeedColumns + " FROM news_feeds")
	if err != nil {
		log.Printf("Error fetching news feeds: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching news feeds"})
		return
	}
	defer rows.Close()

	feeds := []models.NewsFeed{}
	for rows.Next() {
		var f models.NewsFeed
		if err := rows.Scan(&f.ID, &f.ItemID, &f.Discount, &f.Description, &f.Image, &f.CreatedAt, &f.UpdatedAt); err != nil {
			log.Printf("Error scanning news feed row: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching news feeds"})
			return
		}
		feeds = append(feeds, f)
	}

	c.JSON(http.StatusOK, feeds)
}

// GetNewsFeedByID is the handler for GET /api/newsfeeds/:id
func (h *Handlers) GetNewsFeedByID(c *gin.Context) {
	feed, err := h.fetchNewsFeed(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "News feed not found"})
			return
		}
		log.Printf("Error fetching news feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching news feed"})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// UpdateNewsFeed is the handler for PUT /api/newsfeeds/:id
func (h *Handlers) UpdateNewsFeed(c *gin.Context) {
	id := c.Param("id")

	var input UpdateNewsFeedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	querySet := "updated_at = ?"
	queryArgs := []interface{}{time.Now().UTC()}

	if input.ItemID != nil {
		querySet += ", item_id = ?"
		queryArgs = append(queryArgs, *input.ItemID)
	}
	if input.Discount != nil {
		querySet += ", discount = ?"
		queryArgs = append(queryArgs, *input.Discount)
	}
	if input.Description != nil {
		querySet += ", description = ?"
		queryArgs = append(queryArgs, *input.Description)
	}
	if input.Image != nil {
		querySet += ", image = ?"
		queryArgs = append(queryArgs, *input.Image)
	}
	queryArgs = append(queryArgs, id)

	_, err := h.DB.Exec("UPDATE news_feeds SET "+querySet+" WHERE id = ?", queryArgs...)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "A news feed for this item already exists"})
			return
		}
		log.Printf("Error updating news feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating news feed"})
		return
	}

	feed, err := h.fetchNewsFeed(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "News feed not found"})
			return
		}
		log.Printf("Error fetching news feed after update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating news feed"})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// DeleteNewsFeed is the handler for DELETE /api/newsfeeds/:id
func (h *Handlers) DeleteNewsFeed(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM news_feeds WHERE id = ?", c.Param("id"))
	if err != nil {
		log.Printf("Error deleting news feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting news feed"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News feed not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News feed deleted successfully"})
}

// ExpireStalePromotions removes promotions older than the retention window.
// Invoked by the background worker in main.
func (h *Handlers) ExpireStalePromotions(maxAge time.Duration) {
	cutoff := time.Now().UTC().Add(-maxAge)
	result, err := h.DB.Exec("DELETE FROM news_feeds WHERE created_at < ?", cutoff)
	if err != nil {
		log.Printf("Error expiring stale promotions: %v", err)
		return
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("Expired %d stale promotions", n)
	}
}

func (h *Handlers) fetchNewsFeed(id string) (*models.NewsFeed, error) {
	var f models.NewsFeed
	err := h.DB.QueryRow("SELECT "+newsFeedColumns+" FROM news_feeds WHERE id = ?", id).Scan(
		&f.ID, &f.ItemID, &f.Discount, &f.Description, &f.Image, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
