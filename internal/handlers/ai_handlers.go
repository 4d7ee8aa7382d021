package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuggestPromoInput defines the JSON request for the promo assistant.
type SuggestPromoInput struct {
	ItemName string  `json:"itemName" binding:"required"`
	Discount float64 `json:"discount" binding:"required,gte=0.1,lte=100"`
}

// SuggestPromo handles POST /api/admin/ai/suggest-promo
// Drafts a news-feed description for the given item and discount. Available
// only when the server was started with a Gemini API key.
func (h *Handlers) SuggestPromo(c *gin.Context) {
	if h.AIService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is not configured"})
		return
	}

	var input SuggestPromoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	description, err := h.AIService.SuggestPromoDescription(c.Request.Context(), input.ItemName, input.Discount, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}
