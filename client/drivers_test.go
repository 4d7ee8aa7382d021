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

func validDriverInput() DriverInput {
	return DriverInput{
		Name:      "Kasun Perera",
		Mobile:    "0712345678",
		Address:   "12, Galle Road, Colombo",
		VehicleID: "AB1234",
		Category:  "truck",
		NIC:       "987654321V",
		Email:     "kasun@freshmart.lk",
	}
}

func TestDriverValidateFieldFormats(t *testing.T) {
	h := &DriversHook{}

	cases := []struct {
		name   string
		mutate func(*DriverInput)
		want   error
	}{
		{"digits in name", func(in *DriverInput) { in.Name = "Kasun 99" }, ErrInvalidDriverName},
		{"empty name", func(in *DriverInput) { in.Name = "" }, ErrInvalidDriverName},
		{"mobile missing leading zero", func(in *DriverInput) { in.Mobile = "712345678" }, ErrInvalidDriverMobile},
		{"mobile too long", func(in *DriverInput) { in.Mobile = "07123456789" }, ErrInvalidDriverMobile},
		{"address without commas", func(in *DriverInput) { in.Address = "Galle Road Colombo" }, ErrInvalidDriverAddress},
		{"vehicle id one letter", func(in *DriverInput) { in.VehicleID = "A1234" }, ErrInvalidVehicleID},
		{"vehicle id three digits", func(in *DriverInput) { in.VehicleID = "AB123" }, ErrInvalidVehicleID},
		{"nic nine digits no suffix", func(in *DriverInput) { in.NIC = "987654321" }, ErrInvalidNIC},
		{"nic eleven digits", func(in *DriverInput) { in.NIC = "19876543210" }, ErrInvalidNIC},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validDriverInput()
			tc.mutate(&in)
			if err := h.Validate(in, ""); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	if err := h.Validate(validDriverInput(), ""); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	// Twelve-digit NIC form is also accepted.
	in := validDriverInput()
	in.NIC = "200012345678"
	if err := h.Validate(in, ""); err != nil {
		t.Errorf("modern nic rejected: %v", err)
	}
}

func TestDriverDuplicateNameRejectedBeforeNetwork(t *testing.T) {
	var requests int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/drivers", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]Driver{{ID: "drv-1", Name: "Kasun Perera"}})
		case http.MethodPost:
			var in DriverInput
			json.NewDecoder(r.Body).Decode(&in)
			now := time.Now().UTC()
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Driver{
				ID: "drv-new", Name: in.Name, Mobile: in.Mobile, Address: in.Address,
				VehicleID: in.VehicleID, Category: in.Category, NIC: in.NIC,
				Email: in.Email, CreatedAt: now, UpdatedAt: now,
			})
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "test-token")
	ctx := context.Background()

	if err := c.Drivers.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	after := atomic.LoadInt64(&requests)

	in := validDriverInput() // name collides with the seeded driver
	if _, err := c.Drivers.Add(ctx, in); !errors.Is(err, ErrDuplicateDriverName) {
		t.Fatalf("err = %v, want ErrDuplicateDriverName", err)
	}
	if got := atomic.LoadInt64(&requests); got != after {
		t.Errorf("server saw %d requests during the rejected add, want 0", got-after)
	}

	// A distinct name goes through and lands in the cache.
	in.Name = "Nimal Silva"
	created, err := c.Drivers.Add(ctx, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != "drv-new" {
		t.Errorf("created id = %q", created.ID)
	}
	if len(c.Drivers.Cached()) != 2 {
		t.Errorf("cache length = %d, want 2", len(c.Drivers.Cached()))
	}

	// Editing the existing driver under its own name is not a duplicate.
	if err := c.Drivers.Validate(validDriverInput(), "drv-1"); err != nil {
		t.Errorf("validate own record: %v", err)
	}
}
