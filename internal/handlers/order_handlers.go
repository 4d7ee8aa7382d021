package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlaceOrderInput defines the JSON input for the storefront checkout.
// Only presence is checked; the checkout form never applied format rules
// and existing callers rely on that.
type PlaceOrderInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	ItemID  string `json:"itemId" binding:"required"`
}

const orderColumns = "id, name, address, mobile, total_amount, user_id, items, status, created_at, updated_at"

// PlaceOrder is the handler for POST /api/place-order
//
// Checkout is a two-step sequence: persist the order, then decrement the
// item's quantity by one. The steps fail independently, so the response
// carries a three-way result instead of a bare status code:
//
//	success          - order persisted and stock decremented
//	order_failed     - nothing persisted, inventory untouched
//	inventory_failed - order persisted but the decrement failed; the body
//	                   includes the persisted order and callers must treat
//	                   this distinctly from the other two
//
// The decrement itself is a single UPDATE expression, so concurrent
// checkouts never lose updates. There is no stock floor: two checkouts
// racing on the last unit both succeed and quantity goes negative.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Please fill in all required fields",
		})
		return
	}

	ctx := c.Request.Context()

	// Step 1: read the item and persist the order in one transaction.
	tx, err := h.DB.BeginTx(ctx, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Failed to start transaction",
		})
		return
	}
	defer tx.Rollback()

	var itemName, itemPrice string
	err = tx.QueryRowContext(ctx, "SELECT name, price FROM items WHERE id = ?", input.ItemID).Scan(&itemName, &itemPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{
				"result": models.CheckoutOrderFailed,
				"error":  "Item not found",
			})
			return
		}
		log.Printf("Error fetching item for checkout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Error placing order",
		})
		return
	}

	totalAmount, err := strconv.ParseFloat(itemPrice, 64)
	if err != nil {
		log.Printf("Item %s has a non-numeric price %q", input.ItemID, itemPrice)
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Error placing order",
		})
		return
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Address:     input.Address,
		Mobile:      input.Mobile,
		TotalAmount: totalAmount,
		UserID:      userID,
		Items:       itemName,
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	orderQuery := `
		INSERT INTO orders
		(id, name, address, mobile, total_amount, user_id, items, status, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.Name, order.Address, order.Mobile, order.TotalAmount,
		order.UserID, order.Items, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Error placing order",
		})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": models.CheckoutOrderFailed,
			"error":  "Error placing order",
		})
		return
	}

	// Step 2: atomic stock decrement. The order is already committed; if
	// this fails the caller gets the persisted order back with the
	// inventory_failed result and can reconcile stock out of band.
	_, err = h.DB.ExecContext(ctx,
		"UPDATE items SET quantity = quantity - 1, updated_at = ? WHERE id = ?",
		time.Now().UTC(), input.ItemID,
	)
	if err != nil {
		log.Printf("Order %s persisted but inventory decrement failed: %v", order.ID, err)
		c.JSON(http.StatusCreated, gin.H{
			"result": models.CheckoutInventoryFailed,
			"order":  order,
			"error":  "Order placed but inventory was not updated",
		})
		return
	}

	h.invalidateItemCache(c)

	c.JSON(http.StatusCreated, gin.H{
		"result": models.CheckoutSuccess,
		"order":  order,
	})
}

// GetMyOrders is the handler for GET /api/orders/user
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(string)

	rows, err := h.DB.Query("SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		log.Printf("Error scanning order row: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetAllOrders is the handler for GET /api/admin/orders
func (h *Handlers) GetAllOrders(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC")
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		log.Printf("Error scanning order row: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Address, &o.Mobile, &o.TotalAmount, &o.UserID, &o.Items, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
