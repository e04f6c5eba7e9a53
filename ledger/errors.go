package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced product, customer, expense, sale or
	// invoice id does not exist in its collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means a required field is missing or a numeric field
	// is out of range.
	ErrInvalidInput = errors.New("invalid input")
)

// InsufficientStockError rejects a sale line whose quantity exceeds the
// product's current stock. The whole sale is aborted; no stock is altered.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: available %d, requested %d", e.ProductName, e.Available, e.Requested)
}
