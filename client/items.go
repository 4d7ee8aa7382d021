package client

import (
	"context"
	"sync"
)

// ItemsHook wraps the /api/items collection.
type ItemsHook struct {
	c  *Client
	mu sync.Mutex

	items  []Item
	loaded bool
}

// Refresh replaces the cached list with the server's.
func (h *ItemsHook) Refresh(ctx context.Context) error {
	var items []Item
	if err := h.c.do(ctx, "GET", "/api/items", nil, &items); err != nil {
		return err
	}
	h.mu.Lock()
	h.items = items
	h.loaded = true
	h.mu.Unlock()
	return nil
}

// Cached returns a copy of the cached list. It is empty until the first
// Refresh.
func (h *ItemsHook) Cached() []Item {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Item, len(h.items))
	copy(out, h.items)
	return out
}

// Get fetches one item by id, bypassing the cache.
func (h *ItemsHook) Get(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := h.c.do(ctx, "GET", "/api/items/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Add creates an item and appends the server-confirmed record to the cache.
func (h *ItemsHook) Add(ctx context.Context, in ItemInput) (*Item, error) {
	var created Item
	if err := h.c.do(ctx, "POST", "/api/items", in, &created); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.items = append(h.items, created)
	h.mu.Unlock()
	return &created, nil
}

// Update replaces the cached record with the server's post-update record.
func (h *ItemsHook) Update(ctx context.Context, id string, in ItemInput) (*Item, error) {
	var updated Item
	if err := h.c.do(ctx, "PUT", "/api/items/"+id, in, &updated); err != nil {
		return nil, err
	}
	h.reconcile(updated)
	return &updated, nil
}

// Delete removes the item server-side first, then from the cache.
func (h *ItemsHook) Delete(ctx context.Context, id string) error {
	if err := h.c.do(ctx, "DELETE", "/api/items/"+id, nil, nil); err != nil {
		return err
	}
	h.mu.Lock()
	for i := range h.items {
		if h.items[i].ID == id {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return nil
}

// AdjustQuantity applies a signed delta to an item's stock via the
// inventory endpoint and reconciles the cache from the returned record.
func (h *ItemsHook) AdjustQuantity(ctx context.Context, id string, delta int) (*Item, error) {
	body := map[string]int{"quantity": delta}
	var updated Item
	if err := h.c.do(ctx, "PATCH", "/api/update-inventory/"+id, body, &updated); err != nil {
		return nil, err
	}
	h.reconcile(updated)
	return &updated, nil
}

func (h *ItemsHook) reconcile(updated Item) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.items {
		if h.items[i].ID == updated.ID {
			h.items[i] = updated
			return
		}
	}
}
