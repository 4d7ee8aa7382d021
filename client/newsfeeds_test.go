package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newFeedTestClient(t *testing.T, seed []NewsFeed) (*Client, *int64) {
	t.Helper()
	var requests int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/newsfeeds", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(seed)
		case http.MethodPost:
			var in NewsFeedInput
			json.NewDecoder(r.Body).Decode(&in)
			now := time.Now().UTC()
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(NewsFeed{
				ID: "feed-new", ItemID: in.ItemID, Discount: in.Discount,
				Description: in.Description, Image: in.Image,
				CreatedAt: now, UpdatedAt: now,
			})
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-token"), &requests
}

func TestNewsFeedDuplicateItemRejectedBeforeNetwork(t *testing.T) {
	seed := []NewsFeed{{ID: "feed-1", ItemID: "item-1", Discount: 10, Description: "Weekend deal"}}
	c, requests := newFeedTestClient(t, seed)
	ctx := context.Background()

	if err := c.NewsFeeds.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	after := atomic.LoadInt64(requests)

	_, err := c.NewsFeeds.Add(ctx, NewsFeedInput{ItemID: "item-1", Discount: 20, Description: "Second deal"})
	if !errors.Is(err, ErrDuplicateFeedItem) {
		t.Fatalf("err = %v, want ErrDuplicateFeedItem", err)
	}
	if got := atomic.LoadInt64(requests); got != after {
		t.Errorf("server saw %d requests during the rejected add, want 0", got-after)
	}
	if len(c.NewsFeeds.Cached()) != 1 {
		t.Errorf("cache length = %d, want 1", len(c.NewsFeeds.Cached()))
	}
}

func TestNewsFeedUpdateExcludesOwnRecordFromUniqueness(t *testing.T) {
	seed := []NewsFeed{{ID: "feed-1", ItemID: "item-1", Discount: 10, Description: "Weekend deal"}}
	c, _ := newFeedTestClient(t, seed)
	ctx := context.Background()

	if err := c.NewsFeeds.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// Editing feed-1 while keeping its own itemId must not trip the
	// duplicate check.
	in := NewsFeedInput{ItemID: "item-1", Discount: 15, Description: "Bigger deal"}
	if err := c.NewsFeeds.Validate(in, "feed-1"); err != nil {
		t.Errorf("validate own record: %v", err)
	}
	if err := c.NewsFeeds.Validate(in, "feed-2"); !errors.Is(err, ErrDuplicateFeedItem) {
		t.Errorf("validate other record: err = %v, want ErrDuplicateFeedItem", err)
	}
}

func TestNewsFeedValidateBounds(t *testing.T) {
	c, requests := newFeedTestClient(t, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   NewsFeedInput
		want error
	}{
		{"discount zero", NewsFeedInput{ItemID: "i", Discount: 0, Description: "ok"}, ErrInvalidDiscount},
		{"discount below floor", NewsFeedInput{ItemID: "i", Discount: 0.05, Description: "ok"}, ErrInvalidDiscount},
		{"discount above cap", NewsFeedInput{ItemID: "i", Discount: 100.5, Description: "ok"}, ErrInvalidDiscount},
		{"description too long", NewsFeedInput{ItemID: "i", Discount: 10, Description: "this description is definitely longer than fifty characters"}, ErrDescriptionTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.NewsFeeds.Add(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if got := atomic.LoadInt64(requests); got != 0 {
		t.Errorf("server saw %d requests for invalid inputs, want 0", got)
	}
}

func TestNewsFeedBoundaryDiscountsAccepted(t *testing.T) {
	c, _ := newFeedTestClient(t, nil)
	ctx := context.Background()

	for _, discount := range []float64{0.1, 100} {
		if _, err := c.NewsFeeds.Add(ctx, NewsFeedInput{ItemID: "item-1", Discount: discount, Description: "Edge"}); err != nil {
			t.Errorf("discount %v rejected: %v", discount, err)
		}
		// Reset the cache so the second add does not trip uniqueness.
		c.NewsFeeds.feeds = nil
	}
}
