package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func checkoutServer(t *testing.T, status int, body map[string]interface{}) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/place-order", func(w http.ResponseWriter, r *http.Request) {
		var in CheckoutInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("bad checkout body: %v", err)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-token")
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		Name:    "Amaya Silva",
		Address: "5, Lake Road, Kandy",
		Mobile:  "0771234567",
		ItemID:  "item-1",
	}
}

func TestCheckoutMissingFieldRejectedBeforeNetwork(t *testing.T) {
	c := New("http://127.0.0.1:1", "") // unroutable; must never be dialed

	for _, mutate := range []func(*CheckoutInput){
		func(in *CheckoutInput) { in.Name = "" },
		func(in *CheckoutInput) { in.Address = "" },
		func(in *CheckoutInput) { in.Mobile = "" },
		func(in *CheckoutInput) { in.ItemID = "" },
	} {
		in := validCheckoutInput()
		mutate(&in)
		if _, err := c.Checkout.PlaceOrder(context.Background(), in); !errors.Is(err, ErrMissingCheckoutField) {
			t.Errorf("err = %v, want ErrMissingCheckoutField", err)
		}
	}
}

func TestCheckoutSuccessCarriesPricedOrder(t *testing.T) {
	now := time.Now().UTC().Format(time.RFC3339)
	c := checkoutServer(t, http.StatusCreated, map[string]interface{}{
		"result": "success",
		"order": map[string]interface{}{
			"_id": "order-1", "name": "Amaya Silva", "address": "5, Lake Road, Kandy",
			"mobile": "0771234567", "totalAmount": 19.99, "userId": "user-1",
			"items": "Cheddar", "status": "pending", "createdAt": now, "updatedAt": now,
		},
	})

	result, err := c.Checkout.PlaceOrder(context.Background(), validCheckoutInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.Result != CheckoutSuccess {
		t.Fatalf("result = %q, want success", result.Result)
	}
	if result.Order == nil {
		t.Fatal("success result without an order")
	}
	if result.Order.TotalAmount != 19.99 {
		t.Errorf("totalAmount = %v, want 19.99", result.Order.TotalAmount)
	}
	if result.Order.Items != "Cheddar" {
		t.Errorf("items = %q, want Cheddar", result.Order.Items)
	}
}

func TestCheckoutInventoryFailureStillReturnsOrder(t *testing.T) {
	c := checkoutServer(t, http.StatusCreated, map[string]interface{}{
		"result": "inventory_failed",
		"order":  map[string]interface{}{"_id": "order-2", "totalAmount": 4.5, "status": "pending"},
		"error":  "Order placed but inventory was not updated",
	})

	result, err := c.Checkout.PlaceOrder(context.Background(), validCheckoutInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.Result != CheckoutInventoryFailed {
		t.Fatalf("result = %q, want inventory_failed", result.Result)
	}
	// The order was persisted server-side, so the caller gets it back even
	// though the stock decrement failed.
	if result.Order == nil || result.Order.ID != "order-2" {
		t.Errorf("order = %+v, want the persisted order", result.Order)
	}
	if result.Reason == "" {
		t.Error("inventory failure without a reason")
	}
}

func TestCheckoutServerRejectionMapsToOrderFailed(t *testing.T) {
	c := checkoutServer(t, http.StatusNotFound, map[string]interface{}{
		"result": "order_failed",
		"error":  "Item not found",
	})

	result, err := c.Checkout.PlaceOrder(context.Background(), validCheckoutInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if result.Result != CheckoutOrderFailed {
		t.Fatalf("result = %q, want order_failed", result.Result)
	}
	if result.Order != nil {
		t.Errorf("order_failed carried an order: %+v", result.Order)
	}
	if result.Reason != "Item not found" {
		t.Errorf("reason = %q", result.Reason)
	}
}

func TestMyOrdersFetchesHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders/user", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]Order{
			{ID: "order-1", Items: "Cheddar", TotalAmount: 19.99, Status: "pending"},
			{ID: "order-2", Items: "Milk", TotalAmount: 3.10, Status: "completed"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "test-token")
	orders, err := c.Checkout.MyOrders(context.Background())
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("len = %d, want 2", len(orders))
	}
	if orders[0].Items != "Cheddar" {
		t.Errorf("first order items = %q", orders[0].Items)
	}
}
