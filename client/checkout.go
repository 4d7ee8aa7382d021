package client

import (
	"context"
	"errors"
)

// Checkout result kinds, mirroring the server's three-way outcome.
const (
	CheckoutSuccess         = "success"
	CheckoutOrderFailed     = "order_failed"
	CheckoutInventoryFailed = "inventory_failed"
)

var ErrMissingCheckoutField = errors.New("please fill in all required fields")

// CheckoutInput is the delivery form plus the item being bought. Only
// presence is required; the checkout form never applied format rules.
type CheckoutInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	ItemID  string `json:"itemId"`
}

// CheckoutResult is the server's outcome. Callers MUST branch on
// inventory_failed distinctly from the other two: the order exists but the
// item's stock was not decremented.
type CheckoutResult struct {
	Result string `json:"result"`
	Order  *Order `json:"order"`
	Reason string `json:"error"`
}

// CheckoutFlow drives order placement.
type CheckoutFlow struct {
	c *Client
}

// PlaceOrder submits the checkout. A non-nil result with Result ==
// CheckoutOrderFailed means nothing was persisted; CheckoutInventoryFailed
// means the returned Order was persisted but stock is now overstated by
// one.
func (f *CheckoutFlow) PlaceOrder(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.Name == "" || in.Address == "" || in.Mobile == "" || in.ItemID == "" {
		return nil, ErrMissingCheckoutField
	}

	var result CheckoutResult
	err := f.c.do(ctx, "POST", "/api/place-order", in, &result)
	if err != nil {
		// The server reports order failures with an error status; surface
		// the structured result when we can still classify it.
		if apiErr, ok := err.(*APIError); ok {
			return &CheckoutResult{Result: CheckoutOrderFailed, Reason: apiErr.Message}, nil
		}
		return nil, err
	}
	return &result, nil
}

// MyOrders fetches the caller's order history.
func (f *CheckoutFlow) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := f.c.do(ctx, "GET", "/api/orders/user", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
