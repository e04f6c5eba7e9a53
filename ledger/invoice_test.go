package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dokanbook/domain"
)

func mustAddCustomer(t *testing.T, l *Ledger) domain.Customer {
	t.Helper()
	customer, err := l.AddCustomer(context.Background(), domain.CustomerInput{
		Name:     "Karim Enterprise",
		Phone:    "01911-222222",
		Address:  "7 College Road",
		City:     "Sylhet",
		District: "Sylhet",
	})
	if err != nil {
		t.Fatalf("add customer: %v", err)
	}
	return customer
}

func makeInvoiceInput(customerID string) domain.InvoiceInput {
	return domain.InvoiceInput{
		CustomerID: customerID,
		Date:       "2025-07-01",
		Items: []domain.InvoiceItemInput{
			{Description: "Consulting", Quantity: 2, UnitPrice: 500},
			{Description: "Delivery", Quantity: 1, UnitPrice: 120},
		},
		DiscountAmount: 100,
		TaxAmount:      56,
	}
}

func TestAddInvoiceComputesTotalsAndNumber(t *testing.T) {
	l, _ := newTestLedger(t)
	customer := mustAddCustomer(t, l)

	invoice, err := l.AddInvoice(context.Background(), makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	if invoice.InvoiceNumber != "INV-0001" {
		t.Fatalf("expected INV-0001, got %s", invoice.InvoiceNumber)
	}
	if invoice.Subtotal != 1120 {
		t.Fatalf("expected subtotal 1120, got %v", invoice.Subtotal)
	}
	if invoice.GrandTotal != 1076 {
		t.Fatalf("expected grand total 1076, got %v", invoice.GrandTotal)
	}
	if invoice.Items[0].Total != 1000 {
		t.Fatalf("expected first line total 1000, got %v", invoice.Items[0].Total)
	}
	if invoice.CustomerSnapshot.Name != "Karim Enterprise" {
		t.Fatalf("expected customer snapshot, got %+v", invoice.CustomerSnapshot)
	}
	if invoice.CompanyProfileSnapshot.CompanyName == "" {
		t.Fatalf("expected company profile snapshot")
	}
}

func TestInvoiceNumbersSurviveDeletionGaps(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	customer := mustAddCustomer(t, l)

	first, err := l.AddInvoice(ctx, makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	second, err := l.AddInvoice(ctx, makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	if first.InvoiceNumber != "INV-0001" || second.InvoiceNumber != "INV-0002" {
		t.Fatalf("unexpected numbers: %s, %s", first.InvoiceNumber, second.InvoiceNumber)
	}

	if err := l.DeleteInvoice(ctx, first.ID); err != nil {
		t.Fatalf("delete invoice: %v", err)
	}
	third, err := l.AddInvoice(ctx, makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}
	// Gap from the deleted INV-0001 is never reused.
	if third.InvoiceNumber != "INV-0003" {
		t.Fatalf("expected INV-0003 after deletion gap, got %s", third.InvoiceNumber)
	}

	if err := l.DeleteInvoice(ctx, "inv-unknown"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown invoice, got %v", err)
	}
}

func TestNextInvoiceNumberToleratesMalformedSuffixes(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "INV-0007"},
		{InvoiceNumber: "INV-ABC"},
		{InvoiceNumber: "garbage"},
		{InvoiceNumber: ""},
		{InvoiceNumber: "INV-0002"},
	}
	if got := nextInvoiceNumber(invoices); got != "INV-0008" {
		t.Fatalf("expected INV-0008, got %s", got)
	}
	if got := nextInvoiceNumber(nil); got != "INV-0001" {
		t.Fatalf("expected INV-0001 for empty history, got %s", got)
	}
	// Numbers past 4 digits keep growing without truncation.
	if got := nextInvoiceNumber([]domain.Invoice{{InvoiceNumber: "INV-12000"}}); got != "INV-12001" {
		t.Fatalf("expected INV-12001, got %s", got)
	}
}

func TestInvoiceSnapshotsAreStableUnderLaterEdits(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	customer := mustAddCustomer(t, l)

	invoice, err := l.AddInvoice(ctx, makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	customer.Name = "Renamed Enterprise"
	if _, err := l.UpdateCustomer(ctx, customer); err != nil {
		t.Fatalf("update customer: %v", err)
	}
	if err := l.UpdateCompanyProfile(ctx, domain.CompanyProfile{CompanyName: "Renamed Stores"}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	got, err := l.InvoiceByID(invoice.ID)
	if err != nil {
		t.Fatalf("invoice lookup: %v", err)
	}
	if got.CustomerSnapshot.Name != "Karim Enterprise" {
		t.Fatalf("customer snapshot changed: %+v", got.CustomerSnapshot)
	}
	if got.CompanyProfileSnapshot.CompanyName == "Renamed Stores" {
		t.Fatalf("company snapshot changed: %+v", got.CompanyProfileSnapshot)
	}
}

func TestInvoiceQRPayload(t *testing.T) {
	l, _ := newTestLedger(t)
	customer := mustAddCustomer(t, l)

	invoice, err := l.AddInvoice(context.Background(), makeInvoiceInput(customer.ID))
	if err != nil {
		t.Fatalf("add invoice: %v", err)
	}

	var payload domain.QRPayload
	if err := json.Unmarshal([]byte(invoice.QRCodeData), &payload); err != nil {
		t.Fatalf("decode qr payload: %v", err)
	}
	// The QR carries the human-facing number, not the record id.
	if payload.InvoiceID != invoice.InvoiceNumber {
		t.Fatalf("expected qr invoiceId %s, got %s", invoice.InvoiceNumber, payload.InvoiceID)
	}
	if payload.CustomerName != "Karim Enterprise" || payload.Amount != invoice.GrandTotal || payload.Date != invoice.Date {
		t.Fatalf("unexpected qr payload: %+v", payload)
	}

	png, err := InvoiceQRPNG(invoice, 0)
	if err != nil {
		t.Fatalf("render qr png: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected PNG output")
	}

	if _, err := InvoiceQRPNG(domain.Invoice{ID: "inv-empty"}, 128); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing payload, got %v", err)
	}
}

func TestAddInvoiceRejectsUnknownCustomerAndBadInput(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	customer := mustAddCustomer(t, l)

	in := makeInvoiceInput("cus-ghost")
	if _, err := l.AddInvoice(ctx, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	in = makeInvoiceInput(customer.ID)
	in.Items = nil
	if _, err := l.AddInvoice(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected empty items rejection, got %v", err)
	}

	in = makeInvoiceInput(customer.ID)
	in.DiscountAmount = 5000
	if _, err := l.AddInvoice(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected oversized discount rejection, got %v", err)
	}

	in = makeInvoiceInput(customer.ID)
	in.Date = "July 1st"
	if _, err := l.AddInvoice(ctx, in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected bad date rejection, got %v", err)
	}

	if len(l.Invoices()) != 0 {
		t.Fatalf("expected no invoices after rejections")
	}
}
