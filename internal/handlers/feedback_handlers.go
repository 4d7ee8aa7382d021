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

// CreateFeedbackInput defines the JSON input for customer feedback.
type CreateFeedbackInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"required"`
}

// ReplyFeedbackInput is the admin reply body.
type ReplyFeedbackInput struct {
	Reply string `json:"reply" binding:"required"`
}

const feedbackColumns = "id, user_id, name, email, rating, comment, date, reply, created_at, updated_at"

// CreateFeedback is the handler for POST /api/feedback
func (h *Handlers) CreateFeedback(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	var input CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	feedback := models.Feedback{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO feedbacks
		(id, user_id, name, email, rating, comment, date, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		feedback.ID, feedback.UserID, feedback.Name, feedback.Email,
		feedback.Rating, feedback.Comment, feedback.Date,
		feedback.CreatedAt, feedback.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// GetMyFeedback is the handler for GET /api/feedback
func (h *Handlers) GetMyFeedback(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	rows, err := h.DB.Query("SELECT "+feedbackColumns+" FROM feedbacks WHERE user_id = ? ORDER BY date DESC", userID)
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feedback"})
		return
	}
	defer rows.Close()

	feedbacks, err := scanFeedbacks(rows)
	if err != nil {
		log.Printf("Error scanning feedback row: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feedback"})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}

// DeleteFeedback is the handler for DELETE /api/feedback/:id
// Customers can only remove their own feedback.
func (h *Handlers) DeleteFeedback(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	result, err := h.DB.Exec("DELETE FROM feedbacks WHERE id = ? AND user_id = ?", c.Param("id"), userID)
	if err != nil {
		log.Printf("Error deleting feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting feedback"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}

// GetAllFeedback is the handler for GET /api/admin/feedback
func (h *Handlers) GetAllFeedback(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + feedbackColumns + " FROM feedbacks ORDER BY date DESC")
	if err != nil {
		log.Printf("Error fetching feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feedback"})
		return
	}
	defer rows.Close()

	feedbacks, err := scanFeedbacks(rows)
	if err != nil {
		log.Printf("Error scanning feedback row: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feedback"})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}

// ReplyFeedback is the handler for PATCH /api/admin/feedback/:id/reply
func (h *Handlers) ReplyFeedback(c *gin.Context) {
	id := c.Param("id")

	var input ReplyFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.DB.Exec("UPDATE feedbacks SET reply = ?, updated_at = ? WHERE id = ?", input.Reply, time.Now().UTC(), id)
	if err != nil {
		log.Printf("Error replying to feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error replying to feedback"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}

	var f models.Feedback
	var reply sql.NullString
	err = h.DB.QueryRow("SELECT "+feedbackColumns+" FROM feedbacks WHERE id = ?", id).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Email, &f.Rating, &f.Comment, &f.Date, &reply, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error fetching feedback after reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error replying to feedback"})
		return
	}
	if reply.Valid {
		f.Reply = &reply.String
	}

	c.JSON(http.StatusOK, f)
}

func scanFeedbacks(rows *sql.Rows) ([]models.Feedback, error) {
	feedbacks := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		var reply sql.NullString
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Email, &f.Rating, &f.Comment, &f.Date, &reply, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		if reply.Valid {
			f.Reply = &reply.String
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}
