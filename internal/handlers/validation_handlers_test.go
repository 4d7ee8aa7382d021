package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshmart-dev/freshmart-golang/internal/handlers"
	"github.com/freshmart-dev/freshmart-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Input validation happens before any store access, so these tests run a
// bare router with no database behind the handlers.

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("person_name", models.ValidatePersonName)
		v.RegisterValidation("street_address", models.ValidateStreetAddress)
		v.RegisterValidation("lk_mobile", models.ValidateMobile)
		v.RegisterValidation("vehicle_id", models.ValidateVehicleID)
		v.RegisterValidation("nic", models.ValidateNIC)
	}
}

func newValidationRouter() *gin.Engine {
	h := &handlers.Handlers{}
	r := gin.New()
	r.POST("/api/items", h.CreateItem)
	r.POST("/api/drivers", h.CreateDriver)
	r.POST("/api/newsfeeds", h.CreateNewsFeed)
	r.POST("/api/feedback", func(c *gin.Context) {
		c.Set("userID", "user-1")
		h.CreateFeedback(c)
	})
	r.POST("/api/place-order", func(c *gin.Context) {
		c.Set("userID", "user-1")
		h.PlaceOrder(c)
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateItemRequiresAllFields(t *testing.T) {
	r := newValidationRouter()

	cases := []map[string]interface{}{
		{"quantity": 5, "price": "19.99", "image": "apple.jpg"}, // no name
		{"name": "Apples", "price": "19.99", "image": "apple.jpg"},
		{"name": "Apples", "quantity": 5, "image": "apple.jpg"},
		{"name": "Apples", "quantity": 5, "price": "19.99"},
	}
	for i, body := range cases {
		if w := postJSON(t, r, "/api/items", body); w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}
}

func TestCreateDriverFieldFormats(t *testing.T) {
	r := newValidationRouter()

	valid := map[string]interface{}{
		"name":      "Kasun Perera",
		"mobile":    "0712345678",
		"address":   "12, Galle Road, Colombo",
		"vehicleId": "AB1234",
		"category":  "bike",
		"nic":       "987654321V",
		"email":     "kasun@example.com",
	}

	cases := []struct {
		field string
		value string
	}{
		{"mobile", "712345678"}, // no leading 0
		{"vehicleId", "A1234"},  // one letter only
		{"nic", "987654321"},
		{"category", "boat"},
		{"email", "not-an-email"},
		{"address", "Galle Road Colombo"},
		{"name", "Driver 9"},
	}
	for _, tc := range cases {
		body := map[string]interface{}{}
		for k, v := range valid {
			body[k] = v
		}
		body[tc.field] = tc.value
		if w := postJSON(t, r, "/api/drivers", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s=%q: status = %d, want 400", tc.field, tc.value, w.Code)
		}
	}
}

func TestCreateNewsFeedBounds(t *testing.T) {
	r := newValidationRouter()

	longDescription := make([]byte, 51)
	for i := range longDescription {
		longDescription[i] = 'x'
	}

	cases := []map[string]interface{}{
		{"itemId": "i1", "discount": 0.05, "description": "half off", "image": "a.jpg"},
		{"itemId": "i1", "discount": 150, "description": "half off", "image": "a.jpg"},
		{"itemId": "i1", "discount": 25, "description": string(longDescription), "image": "a.jpg"},
		{"discount": 25, "description": "half off", "image": "a.jpg"}, // no itemId
	}
	for i, body := range cases {
		if w := postJSON(t, r, "/api/newsfeeds", body); w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}
}

func TestCreateFeedbackRatingBounds(t *testing.T) {
	r := newValidationRouter()

	for _, rating := range []int{0, 6, -1} {
		body := map[string]interface{}{
			"name":    "Amaya",
			"email":   "amaya@example.com",
			"rating":  rating,
			"comment": "great store",
		}
		if w := postJSON(t, r, "/api/feedback", body); w.Code != http.StatusBadRequest {
			t.Errorf("rating %d: status = %d, want 400", rating, w.Code)
		}
	}
}

func TestPlaceOrderRequiresAllFields(t *testing.T) {
	r := newValidationRouter()

	w := postJSON(t, r, "/api/place-order", map[string]interface{}{
		"name": "Amaya", "mobile": "0712345678", "itemId": "i1", // no address
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "order_failed" {
		t.Errorf("result = %q, want order_failed", resp.Result)
	}
}
