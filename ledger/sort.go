package ledger

import (
	"slices"
	"strings"

	"dokanbook/domain"
)

func cmpFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Products stay sorted by name ascending, case-insensitive.
func sortProducts(products []domain.Product) {
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		if c := cmpFold(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// Sale history is newest first. CreatedAt is RFC 3339 UTC, so string order
// is chronological order.
func sortSales(sales []domain.Sale) {
	slices.SortStableFunc(sales, func(a, b domain.Sale) int {
		if c := strings.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}

func sortExpenses(expenses []domain.Expense) {
	slices.SortStableFunc(expenses, func(a, b domain.Expense) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}

func sortCustomers(customers []domain.Customer) {
	slices.SortStableFunc(customers, func(a, b domain.Customer) int {
		if c := cmpFold(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func sortInvoices(invoices []domain.Invoice) {
	slices.SortStableFunc(invoices, func(a, b domain.Invoice) int {
		if c := strings.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}
