package client

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrDuplicateFeedItem is returned before any network call when the
	// cached list already holds a feed for the same item.
	ErrDuplicateFeedItem  = errors.New("a news feed for this item already exists")
	ErrInvalidDiscount    = errors.New("discount must be between 0.1 and 100")
	ErrDescriptionTooLong = errors.New("description cannot exceed 50 characters")
)

// NewsFeedsHook wraps the /api/newsfeeds collection.
type NewsFeedsHook struct {
	c  *Client
	mu sync.Mutex

	feeds []NewsFeed
}

func (h *NewsFeedsHook) Refresh(ctx context.Context) error {
	var feeds []NewsFeed
	if err := h.c.do(ctx, "GET", "/api/newsfeeds", nil, &feeds); err != nil {
		return err
	}
	h.mu.Lock()
	h.feeds = feeds
	h.mu.Unlock()
	return nil
}

func (h *NewsFeedsHook) Cached() []NewsFeed {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]NewsFeed, len(h.feeds))
	copy(out, h.feeds)
	return out
}

// Validate checks the promotion bounds and itemId uniqueness against the
// cached list, excluding excludeID (the feed being edited).
func (h *NewsFeedsHook) Validate(in NewsFeedInput, excludeID string) error {
	if in.Discount < 0.1 || in.Discount > 100 {
		return ErrInvalidDiscount
	}
	if len(in.Description) > 50 {
		return ErrDescriptionTooLong
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, f := range h.feeds {
		if f.ItemID == in.ItemID && f.ID != excludeID {
			return ErrDuplicateFeedItem
		}
	}
	return nil
}

func (h *NewsFeedsHook) Add(ctx context.Context, in NewsFeedInput) (*NewsFeed, error) {
	if err := h.Validate(in, ""); err != nil {
		return nil, err
	}

	var created NewsFeed
	if err := h.c.do(ctx, "POST", "/api/newsfeeds", in, &created); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.feeds = append(h.feeds, created)
	h.mu.Unlock()
	return &created, nil
}

func (h *NewsFeedsHook) Update(ctx context.Context, id string, in NewsFeedInput) (*NewsFeed, error) {
	if err := h.Validate(in, id); err != nil {
		return nil, err
	}

	var updated NewsFeed
	if err := h.c.do(ctx, "PUT", "/api/newsfeeds/"+id, in, &updated); err != nil {
		return nil, err
	}
	h.mu.Lock()
	for i := range h.feeds {
		if h.feeds[i].ID == updated.ID {
			h.feeds[i] = updated
			break
		}
	}
	h.mu.Unlock()
	return &updated, nil
}

func (h *NewsFeedsHook) Delete(ctx context.Context, id string) error {
	if err := h.c.do(ctx, "DELETE", "/api/newsfeeds/"+id, nil, nil); err != nil {
		return err
	}
	h.mu.Lock()
	for i := range h.feeds {
		if h.feeds[i].ID == id {
			h.feeds = append(h.feeds[:i], h.feeds[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return nil
}
