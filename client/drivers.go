package client

import (
	"context"
	"errors"
	"sync"
)

// Driver field formats, checked before any network call so the admin form
// can surface errors without a round trip. The API enforces the same rules.
var (
	ErrInvalidDriverName    = errors.New("name must contain only letters and spaces")
	ErrInvalidDriverMobile  = errors.New("mobile must be 10 digits starting with 0")
	ErrInvalidDriverAddress = errors.New("address must look like 'No, Street, City'")
	ErrInvalidVehicleID     = errors.New("vehicle id must be 2 letters followed by 4 digits")
	ErrInvalidNIC           = errors.New("nic must be 12 digits or 9 digits followed by V")
	ErrDuplicateDriverName  = errors.New("a driver with this name already exists")
)

// DriversHook wraps the /api/drivers collection.
type DriversHook struct {
	c  *Client
	mu sync.Mutex

	drivers []Driver
}

func (h *DriversHook) Refresh(ctx context.Context) error {
	var drivers []Driver
	if err := h.c.do(ctx, "GET", "/api/drivers", nil, &drivers); err != nil {
		return err
	}
	h.mu.Lock()
	h.drivers = drivers
	h.mu.Unlock()
	return nil
}

func (h *DriversHook) Cached() []Driver {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Driver, len(h.drivers))
	copy(out, h.drivers)
	return out
}

// Validate applies the driver form rules plus name uniqueness against the
// cached list, excluding excludeID (the record being edited).
func (h *DriversHook) Validate(in DriverInput, excludeID string) error {
	switch {
	case !personNameRX.MatchString(in.Name):
		return ErrInvalidDriverName
	case !streetAddressRX.MatchString(in.Address):
		return ErrInvalidDriverAddress
	case !mobileRX.MatchString(in.Mobile):
		return ErrInvalidDriverMobile
	case !vehicleIDRX.MatchString(in.VehicleID):
		return ErrInvalidVehicleID
	case !nicRX.MatchString(in.NIC):
		return ErrInvalidNIC
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, d := range h.drivers {
		if d.Name == in.Name && d.ID != excludeID {
			return ErrDuplicateDriverName
		}
	}
	return nil
}

func (h *DriversHook) Add(ctx context.Context, in DriverInput) (*Driver, error) {
	if err := h.Validate(in, ""); err != nil {
		return nil, err
	}

	var created Driver
	if err := h.c.do(ctx, "POST", "/api/drivers", in, &created); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.drivers = append(h.drivers, created)
	h.mu.Unlock()
	return &created, nil
}

func (h *DriversHook) Update(ctx context.Context, id string, in DriverInput) (*Driver, error) {
	if err := h.Validate(in, id); err != nil {
		return nil, err
	}

	var updated Driver
	if err := h.c.do(ctx, "PUT", "/api/drivers/"+id, in, &updated); err != nil {
		return nil, err
	}
	h.mu.Lock()
	for i := range h.drivers {
		if h.drivers[i].ID == updated.ID {
			h.drivers[i] = updated
			break
		}
	}
	h.mu.Unlock()
	return &updated, nil
}

func (h *DriversHook) Delete(ctx context.Context, id string) error {
	if err := h.c.do(ctx, "DELETE", "/api/drivers/"+id, nil, nil); err != nil {
		return err
	}
	h.mu.Lock()
	for i := range h.drivers {
		if h.drivers[i].ID == id {
			h.drivers = append(h.drivers[:i], h.drivers[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return nil
}
