// Package ledger implements the back-office ledger service: products, sales,
// expenses, customers, invoices and the company profile, persisted
// per-collection to a key-value store after every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"dokanbook/domain"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

// Notifier receives the user-facing outcome of every operation. The ledger
// only depends on this interface; wiring a bus (or nothing) is the caller's
// choice.
type Notifier interface {
	Show(message string, kind notify.Kind)
}

type NopNotifier struct{}

func (NopNotifier) Show(string, notify.Kind) {}

// Ledger owns the in-memory collections. Every operation runs to completion
// under one mutex: mutations are single-writer and two sale commitments can
// never interleave against the same product snapshot.
type Ledger struct {
	mu       sync.Mutex
	kv       kvstore.Store
	notifier Notifier

	products  []domain.Product
	sales     []domain.Sale
	expenses  []domain.Expense
	customers []domain.Customer
	invoices  []domain.Invoice
	profile   domain.CompanyProfile
	theme     string
}

// Open loads every collection from the store. Missing keys fall back to an
// empty collection, the default company profile and the light theme.
func Open(ctx context.Context, kv kvstore.Store, notifier Notifier) (*Ledger, error) {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	l := &Ledger{
		kv:       kv,
		notifier: notifier,
		profile:  domain.DefaultCompanyProfile(),
		theme:    "light",
	}

	if err := l.load(ctx, kvstore.KeyProducts, &l.products); err != nil {
		return nil, err
	}
	if err := l.load(ctx, kvstore.KeySales, &l.sales); err != nil {
		return nil, err
	}
	if err := l.load(ctx, kvstore.KeyExpenses, &l.expenses); err != nil {
		return nil, err
	}
	if err := l.load(ctx, kvstore.KeyCustomers, &l.customers); err != nil {
		return nil, err
	}
	if err := l.load(ctx, kvstore.KeyInvoices, &l.invoices); err != nil {
		return nil, err
	}

	var profile domain.CompanyProfile
	found, err := l.lookup(ctx, kvstore.KeyCompanyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if found && profile.CompanyName != "" {
		l.profile = profile
	}

	var theme string
	found, err = l.lookup(ctx, kvstore.KeyTheme, &theme)
	if err != nil {
		return nil, err
	}
	if found && (theme == "light" || theme == "dark") {
		l.theme = theme
	}

	sortProducts(l.products)
	sortSales(l.sales)
	sortExpenses(l.expenses)
	sortCustomers(l.customers)
	sortInvoices(l.invoices)

	return l, nil
}

func (l *Ledger) load(ctx context.Context, key string, target any) error {
	_, err := l.lookup(ctx, key, target)
	return err
}

func (l *Ledger) lookup(ctx context.Context, key string, target any) (bool, error) {
	data, err := l.kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	return true, nil
}

// persist serializes one collection under its key. Callers commit the new
// in-memory slice only after persist succeeds, so a store failure leaves
// prior state unchanged.
func (l *Ledger) persist(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	if err := l.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// reject surfaces a failed operation on the notification channel and returns
// the typed error unchanged.
func (l *Ledger) reject(message string, err error) error {
	l.notifier.Show(message, notify.KindError)
	return err
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Theme returns the persisted UI theme preference, "light" or "dark".
func (l *Ledger) Theme() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.theme
}

func (l *Ledger) SetTheme(ctx context.Context, theme string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if theme != "light" && theme != "dark" {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, theme)
	}
	if err := l.persist(ctx, kvstore.KeyTheme, theme); err != nil {
		return err
	}
	l.theme = theme
	return nil
}
