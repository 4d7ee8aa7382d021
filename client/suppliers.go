package client

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrInvalidSupplierName    = errors.New("name must contain only letters and spaces")
	ErrInvalidSupplierAddress = errors.New("address must look like 'No, Street, City'")
	ErrInvalidSupplierMobile  = errors.New("mobile must be 10 digits starting with 0")
	ErrInvalidSupplierEmail   = errors.New("email address is not valid")
)

// SuppliersHook wraps the /api/suppliers collection.
type SuppliersHook struct {
	c  *Client
	mu sync.Mutex

	suppliers []Supplier
}

func (h *SuppliersHook) Refresh(ctx context.Context) error {
	var suppliers []Supplier
	if err := h.c.do(ctx, "GET", "/api/suppliers", nil, &suppliers); err != nil {
		return err
	}
	h.mu.Lock()
	h.suppliers = suppliers
	h.mu.Unlock()
	return nil
}

func (h *SuppliersHook) Cached() []Supplier {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Supplier, len(h.suppliers))
	copy(out, h.suppliers)
	return out
}

// Validate applies the supplier form rules.
func (h *SuppliersHook) Validate(in SupplierInput) error {
	switch {
	case !personNameRX.MatchString(in.Name):
		return ErrInvalidSupplierName
	case !streetAddressRX.MatchString(in.Address):
		return ErrInvalidSupplierAddress
	case !mobileRX.MatchString(in.Mobile):
		return ErrInvalidSupplierMobile
	case !emailRX.MatchString(in.Email):
		return ErrInvalidSupplierEmail
	}
	return nil
}

func (h *SuppliersHook) Add(ctx context.Context, in SupplierInput) (*Supplier, error) {
	if err := h.Validate(in); err != nil {
		return nil, err
	}

	var created Supplier
	if err := h.c.do(ctx, "POST", "/api/suppliers", in, &created); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.suppliers = append(h.suppliers, created)
	h.mu.Unlock()
	return &created, nil
}

func (h *SuppliersHook) Update(ctx context.Context, id string, in SupplierInput) (*Supplier, error) {
	if err := h.Validate(in); err != nil {
		return nil, err
	}

	var updated Supplier
	if err := h.c.do(ctx, "PUT", "/api/suppliers/"+id, in, &updated); err != nil {
		return nil, err
	}
	h.mu.Lock()
	for i := range h.suppliers {
		if h.suppliers[i].ID == updated.ID {
			h.suppliers[i] = updated
			break
		}
	}
	h.mu.Unlock()
	return &updated, nil
}

func (h *SuppliersHook) Delete(ctx context.Context, id string) error {
	if err := h.c.do(ctx, "DELETE", "/api/suppliers/"+id, nil, nil); err != nil {
		return err
	}
	h.mu.Lock()
	for i := range h.suppliers {
		if h.suppliers[i].ID == id {
			h.suppliers = append(h.suppliers[:i], h.suppliers[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	return nil
}
