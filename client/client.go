// Package client is a Go client for the FreshMart API. Each resource gets a
// hook that keeps an in-memory copy of the server's list and only updates it
// from records the server confirmed: mutate, await the response, reconcile
// the cached list from the returned record. On failure the cache is left
// untouched and the error is returned to the caller. There are no
// optimistic updates and no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client is the entry point. Zero-value hooks hang off it, one per resource.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration

	Items     *ItemsHook
	Drivers   *DriversHook
	Suppliers *SuppliersHook
	NewsFeeds *NewsFeedsHook
	Checkout  *CheckoutFlow
}

// New builds a client for the given API base URL ("http://host:8080").
// token may be empty for public reads.
func New(baseURL, token string) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		timeout:    10 * time.Second,
	}
	c.Items = &ItemsHook{c: c}
	c.Drivers = &DriversHook{c: c}
	c.Suppliers = &SuppliersHook{c: c}
	c.NewsFeeds = &NewsFeedsHook{c: c}
	c.Checkout = &CheckoutFlow{c: c}
	return c
}

// SetToken swaps the bearer token (after login).
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues one JSON request with a per-call timeout. Nothing in the old
// stack had timeouts, which meant a hung server hung the caller forever.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
