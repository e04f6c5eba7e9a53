package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"dokanbook/domain"
	"dokanbook/format"
	"dokanbook/internal/xid"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

// nextInvoiceNumber derives the next sequential number from the highest
// numeric suffix across existing invoices. Deletion gaps are never reused and
// malformed suffixes count as 0.
func nextInvoiceNumber(invoices []domain.Invoice) string {
	highest := 0
	for _, inv := range invoices {
		suffix := inv.InvoiceNumber
		if i := strings.LastIndex(suffix, "-"); i >= 0 {
			suffix = suffix[i+1:]
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("INV-%04d", highest+1)
}

// NextInvoiceNumber previews the number the next AddInvoice call will assign.
func (l *Ledger) NextInvoiceNumber() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return nextInvoiceNumber(l.invoices)
}

func validateInvoiceInput(in domain.InvoiceInput) error {
	if !format.ValidDate(in.Date) {
		return fmt.Errorf("%w: invoice date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if in.DueDate != "" && !format.ValidDate(in.DueDate) {
		return fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: invoice needs at least one line item", ErrInvalidInput)
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.Description) == "" {
			return fmt.Errorf("%w: line item description is required", ErrInvalidInput)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: line item quantity must be at least 1", ErrInvalidInput)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: line item unit price must not be negative", ErrInvalidInput)
		}
	}
	if in.DiscountAmount < 0 || in.TaxAmount < 0 {
		return fmt.Errorf("%w: discount and tax must not be negative", ErrInvalidInput)
	}
	return nil
}

// AddInvoice assigns the next sequential invoice number, snapshots the
// customer and company profile so the invoice stays stable under later edits,
// computes all totals and embeds the QR payload.
func (l *Ledger) AddInvoice(ctx context.Context, in domain.InvoiceInput) (domain.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := validateInvoiceInput(in); err != nil {
		return domain.Invoice{}, l.reject(err.Error(), err)
	}

	custIdx := slices.IndexFunc(l.customers, func(c domain.Customer) bool { return c.ID == in.CustomerID })
	if custIdx < 0 {
		err := fmt.Errorf("%w: customer %s", ErrNotFound, in.CustomerID)
		return domain.Invoice{}, l.reject("Customer not found. Invoice not created.", err)
	}
	customer := l.customers[custIdx]

	items := make([]domain.InvoiceItem, 0, len(in.Items))
	var subtotal float64
	for _, item := range in.Items {
		total := item.UnitPrice * float64(item.Quantity)
		items = append(items, domain.InvoiceItem{
			ID:          xid.New("itm"),
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       total,
		})
		subtotal += total
	}
	if in.DiscountAmount > subtotal {
		err := fmt.Errorf("%w: discount exceeds subtotal", ErrInvalidInput)
		return domain.Invoice{}, l.reject(err.Error(), err)
	}
	grandTotal := subtotal - in.DiscountAmount + in.TaxAmount

	number := nextInvoiceNumber(l.invoices)
	qrPayload, err := json.Marshal(domain.QRPayload{
		InvoiceID:    number,
		CustomerName: customer.Name,
		Amount:       grandTotal,
		Date:         in.Date,
	})
	if err != nil {
		return domain.Invoice{}, l.reject("Failed to create invoice.", err)
	}

	invoice := domain.Invoice{
		ID:                     xid.New("inv"),
		InvoiceNumber:          number,
		CustomerID:             customer.ID,
		CustomerSnapshot:       customer,
		CompanyProfileSnapshot: l.profile,
		Date:                   in.Date,
		DueDate:                in.DueDate,
		Items:                  items,
		Subtotal:               subtotal,
		DiscountAmount:         in.DiscountAmount,
		TaxAmount:              in.TaxAmount,
		GrandTotal:             grandTotal,
		Notes:                  strings.TrimSpace(in.Notes),
		QRCodeData:             string(qrPayload),
		CreatedAt:              nowStamp(),
	}

	invoices := append([]domain.Invoice{invoice}, l.invoices...)
	sortInvoices(invoices)

	if err := l.persist(ctx, kvstore.KeyInvoices, invoices); err != nil {
		return domain.Invoice{}, l.reject("Failed to create invoice.", err)
	}
	l.invoices = invoices

	l.notifier.Show(fmt.Sprintf("Invoice %s generated successfully.", number), notify.KindSuccess)
	return cloneInvoice(invoice), nil
}

func (l *Ledger) DeleteInvoice(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.invoices, func(inv domain.Invoice) bool { return inv.ID == id })
	if idx < 0 {
		err := fmt.Errorf("%w: invoice %s", ErrNotFound, id)
		return l.reject("Invoice not found.", err)
	}

	invoices := slices.Delete(slices.Clone(l.invoices), idx, idx+1)
	if err := l.persist(ctx, kvstore.KeyInvoices, invoices); err != nil {
		return l.reject("Failed to delete invoice.", err)
	}
	l.invoices = invoices

	l.notifier.Show("Invoice deleted.", notify.KindDelete)
	return nil
}

// Invoices returns the invoice history, newest first.
func (l *Ledger) Invoices() []domain.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Invoice, len(l.invoices))
	for i, inv := range l.invoices {
		out[i] = cloneInvoice(inv)
	}
	return out
}

func (l *Ledger) InvoiceByID(id string) (domain.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, inv := range l.invoices {
		if inv.ID == id {
			return cloneInvoice(inv), nil
		}
	}
	return domain.Invoice{}, fmt.Errorf("%w: invoice %s", ErrNotFound, id)
}

func cloneInvoice(inv domain.Invoice) domain.Invoice {
	inv.Items = slices.Clone(inv.Items)
	return inv
}
