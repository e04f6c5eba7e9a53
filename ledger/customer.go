package ledger

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dokanbook/domain"
	"dokanbook/internal/xid"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

func validateCustomerInput(in domain.CustomerInput) error {
	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"phone", in.Phone},
		{"address", in.Address},
		{"city", in.City},
		{"district", in.District},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: customer %s is required", ErrInvalidInput, r.field)
		}
	}
	return nil
}

// AddCustomer returns the created record so callers (the invoice creation
// flow) can reference its id immediately.
func (l *Ledger) AddCustomer(ctx context.Context, in domain.CustomerInput) (domain.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := validateCustomerInput(in); err != nil {
		return domain.Customer{}, l.reject(err.Error(), err)
	}

	customer := domain.Customer{
		ID:        xid.New("cus"),
		Name:      strings.TrimSpace(in.Name),
		District:  strings.TrimSpace(in.District),
		City:      strings.TrimSpace(in.City),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: nowStamp(),
	}

	customers := append(slices.Clone(l.customers), customer)
	sortCustomers(customers)

	if err := l.persist(ctx, kvstore.KeyCustomers, customers); err != nil {
		return domain.Customer{}, l.reject("Failed to save customer.", err)
	}
	l.customers = customers

	l.notifier.Show("Customer added successfully.", notify.KindSuccess)
	return customer, nil
}

func (l *Ledger) UpdateCustomer(ctx context.Context, updated domain.Customer) (domain.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.customers, func(c domain.Customer) bool { return c.ID == updated.ID })
	if idx < 0 {
		err := fmt.Errorf("%w: customer %s", ErrNotFound, updated.ID)
		return domain.Customer{}, l.reject("Customer not found.", err)
	}
	if err := validateCustomerInput(domain.CustomerInput{
		Name:     updated.Name,
		District: updated.District,
		City:     updated.City,
		Address:  updated.Address,
		Phone:    updated.Phone,
		Email:    updated.Email,
	}); err != nil {
		return domain.Customer{}, l.reject(err.Error(), err)
	}

	updated.CreatedAt = l.customers[idx].CreatedAt

	customers := slices.Clone(l.customers)
	customers[idx] = updated
	sortCustomers(customers)

	if err := l.persist(ctx, kvstore.KeyCustomers, customers); err != nil {
		return domain.Customer{}, l.reject("Failed to save customer.", err)
	}
	l.customers = customers

	l.notifier.Show("Customer updated successfully.", notify.KindSuccess)
	return updated, nil
}

func (l *Ledger) DeleteCustomer(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.customers, func(c domain.Customer) bool { return c.ID == id })
	if idx < 0 {
		err := fmt.Errorf("%w: customer %s", ErrNotFound, id)
		return l.reject("Customer not found.", err)
	}

	customers := slices.Delete(slices.Clone(l.customers), idx, idx+1)
	if err := l.persist(ctx, kvstore.KeyCustomers, customers); err != nil {
		return l.reject("Failed to delete customer.", err)
	}
	l.customers = customers

	l.notifier.Show("Customer deleted.", notify.KindDelete)
	return nil
}

// Customers returns the collection sorted by name ascending.
func (l *Ledger) Customers() []domain.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.customers)
}

func (l *Ledger) CustomerByID(id string) (domain.Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range l.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("%w: customer %s", ErrNotFound, id)
}
