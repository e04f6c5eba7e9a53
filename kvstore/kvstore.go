// Package kvstore defines the persistent key-value store every ledger
// collection is serialized into, one JSON document per named key.
package kvstore

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Well-known collection keys. Missing keys mean "nothing stored yet" and the
// ledger falls back to an empty collection or the documented default.
const (
	KeyProducts       = "products"
	KeySales          = "sales"
	KeyExpenses       = "expenses"
	KeyCustomers      = "customers"
	KeyCompanyProfile = "companyProfile"
	KeyInvoices       = "invoices"
	KeyTheme          = "theme"
)

type Store interface {
	// Get returns the stored value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
