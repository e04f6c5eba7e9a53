package ledger

import (
	"context"
	"errors"
	"testing"

	"dokanbook/domain"
	"dokanbook/notify"
)

func TestSaleCommitSnapshotsAndDecrementsStock(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Honey 500g", SellingPrice: 100, PurchasePrice: 60, Stock: 10})

	sale, err := l.AddSale(ctx, domain.SaleInput{
		Date:  "2025-06-01",
		Items: []domain.SaleLineInput{{ProductID: p.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("add sale: %v", err)
	}

	if sale.TotalAmount != 300 {
		t.Fatalf("expected totalAmount 300, got %v", sale.TotalAmount)
	}
	if sale.TotalCost != 180 {
		t.Fatalf("expected totalCost 180, got %v", sale.TotalCost)
	}
	got, _ := l.ProductByID(p.ID)
	if got.Stock != 7 {
		t.Fatalf("expected stock 7, got %d", got.Stock)
	}

	item := sale.Items[0]
	if item.ProductName != "Honey 500g" || item.UnitPrice != 100 || item.UnitCost != 60 {
		t.Fatalf("unexpected line snapshot: %+v", item)
	}

	// Second sale exceeding the remaining stock is rejected wholesale.
	_, err = l.AddSale(ctx, domain.SaleInput{
		Date:  "2025-06-01",
		Items: []domain.SaleLineInput{{ProductID: p.ID, Quantity: 8}},
	})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ProductName != "Honey 500g" || stockErr.Available != 7 || stockErr.Requested != 8 {
		t.Fatalf("unexpected stock error detail: %+v", stockErr)
	}

	got, _ = l.ProductByID(p.ID)
	if got.Stock != 7 {
		t.Fatalf("expected stock still 7 after rejection, got %d", got.Stock)
	}
	if len(l.Sales()) != 1 {
		t.Fatalf("expected exactly one committed sale")
	}
}

func TestSaleUnknownProductRejectsWholeSale(t *testing.T) {
	l, recorder := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Salt 1kg", SellingPrice: 42, PurchasePrice: 30, Stock: 20})

	// First line would pass; the unknown second line must abort everything.
	_, err := l.AddSale(ctx, domain.SaleInput{
		Date: "2025-06-02",
		Items: []domain.SaleLineInput{
			{ProductID: p.ID, Quantity: 5},
			{ProductID: "prd-ghost", Quantity: 1},
		},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, _ := l.ProductByID(p.ID)
	if got.Stock != 20 {
		t.Fatalf("expected stock untouched at 20, got %d", got.Stock)
	}
	if len(l.Sales()) != 0 {
		t.Fatalf("expected no sale recorded")
	}
	note, ok := recorder.last()
	if !ok || note.Kind != notify.KindError {
		t.Fatalf("expected error notification, got %+v", note)
	}
}

func TestSaleRepeatedLinesShareTheSameStock(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Eggs 12pc", SellingPrice: 150, PurchasePrice: 120, Stock: 5})

	// 3 + 3 exceeds stock 5 even though each line alone would fit.
	_, err := l.AddSale(ctx, domain.SaleInput{
		Date: "2025-06-03",
		Items: []domain.SaleLineInput{
			{ProductID: p.ID, Quantity: 3},
			{ProductID: p.ID, Quantity: 3},
		},
	})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 2 {
		t.Fatalf("expected 2 left for the second line, got %d", stockErr.Available)
	}
	got, _ := l.ProductByID(p.ID)
	if got.Stock != 5 {
		t.Fatalf("expected stock untouched at 5, got %d", got.Stock)
	}

	// 3 + 2 fits exactly.
	sale, err := l.AddSale(ctx, domain.SaleInput{
		Date: "2025-06-03",
		Items: []domain.SaleLineInput{
			{ProductID: p.ID, Quantity: 3},
			{ProductID: p.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("add sale: %v", err)
	}
	if sale.TotalAmount != 750 {
		t.Fatalf("expected totalAmount 750, got %v", sale.TotalAmount)
	}
	got, _ = l.ProductByID(p.ID)
	if got.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", got.Stock)
	}
}

func TestStockConservationAcrossSales(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Biscuits", SellingPrice: 25, PurchasePrice: 18, Stock: 30})

	committed := 0
	for _, qty := range []int{4, 9, 1, 30, 7, 10} {
		sale, err := l.AddSale(ctx, domain.SaleInput{
			Date:  "2025-06-04",
			Items: []domain.SaleLineInput{{ProductID: p.ID, Quantity: qty}},
		})
		if err != nil {
			continue
		}
		committed += sale.Items[0].Quantity
	}

	got, _ := l.ProductByID(p.ID)
	if got.Stock != 30-committed {
		t.Fatalf("stock %d does not match 30 minus committed %d", got.Stock, committed)
	}
	if got.Stock < 0 {
		t.Fatalf("stock went negative: %d", got.Stock)
	}
}

func TestSaleSnapshotsAreFrozen(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Old Name", SellingPrice: 10, PurchasePrice: 6, Stock: 100})
	if _, err := l.AddSale(ctx, domain.SaleInput{Date: "2025-06-05", Items: []domain.SaleLineInput{{ProductID: p.ID, Quantity: 1}}}); err != nil {
		t.Fatalf("add sale: %v", err)
	}

	edited, _ := l.ProductByID(p.ID)
	edited.Name = "New Name"
	edited.SellingPrice = 99
	edited.PurchasePrice = 50
	if _, err := l.UpdateProduct(ctx, edited); err != nil {
		t.Fatalf("update product: %v", err)
	}

	item := l.Sales()[0].Items[0]
	if item.ProductName != "Old Name" || item.UnitPrice != 10 || item.UnitCost != 6 {
		t.Fatalf("historical sale changed after product edit: %+v", item)
	}
}

func TestDeleteSalesPurgesRecordsWithoutRestock(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	p := mustAddProduct(t, l, domain.ProductInput{Name: "Oil 1L", SellingPrice: 180, PurchasePrice: 150, Stock: 50})

	var ids []string
	for i := 0; i < 3; i++ {
		sale, err := l.AddSale(ctx, domain.SaleInput{Date: "2025-06-06", Items: []domain.SaleLineInput{{ProductID: p.ID, Quantity: 2}}})
		if err != nil {
			t.Fatalf("add sale %d: %v", i, err)
		}
		ids = append(ids, sale.ID)
	}

	removed, err := l.DeleteSales(ctx, []string{ids[0], ids[2], "sal-unknown"})
	if err != nil {
		t.Fatalf("delete sales: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	sales := l.Sales()
	if len(sales) != 1 || sales[0].ID != ids[1] {
		t.Fatalf("expected only the middle sale to remain, got %+v", sales)
	}

	// Deletion is a record purge, not an undo.
	got, _ := l.ProductByID(p.ID)
	if got.Stock != 44 {
		t.Fatalf("expected stock to stay at 44, got %d", got.Stock)
	}
}
