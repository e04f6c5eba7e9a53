package ledger

import (
	"context"
	"fmt"
	"slices"

	"dokanbook/domain"
	"dokanbook/format"
	"dokanbook/internal/xid"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

// AddSale commits a sale transaction. Every line is validated against a
// working copy of the product collection before anything is written: an
// unknown product or an over-stock quantity aborts the whole sale with no
// stock altered and no sale recorded. Line snapshots freeze the product name
// and prices at this moment.
func (l *Ledger) AddSale(ctx context.Context, in domain.SaleInput) (domain.Sale, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !format.ValidDate(in.Date) {
		err := fmt.Errorf("%w: sale date must be YYYY-MM-DD", ErrInvalidInput)
		return domain.Sale{}, l.reject(err.Error(), err)
	}
	if len(in.Items) == 0 {
		err := fmt.Errorf("%w: sale needs at least one item", ErrInvalidInput)
		return domain.Sale{}, l.reject(err.Error(), err)
	}

	// Working copy: repeated lines for the same product see the stock left
	// by earlier lines, and rejection throws the whole copy away.
	updated := slices.Clone(l.products)
	items := make([]domain.SaleItem, 0, len(in.Items))
	var totalAmount, totalCost float64

	for _, line := range in.Items {
		if line.Quantity < 1 {
			err := fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
			return domain.Sale{}, l.reject(err.Error(), err)
		}

		idx := slices.IndexFunc(updated, func(p domain.Product) bool { return p.ID == line.ProductID })
		if idx < 0 {
			err := fmt.Errorf("%w: product %s", ErrNotFound, line.ProductID)
			msg := fmt.Sprintf("Product with id %s not found. Sale not recorded.", line.ProductID)
			return domain.Sale{}, l.reject(msg, err)
		}

		product := updated[idx]
		if product.Stock < line.Quantity {
			err := &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   line.Quantity,
				Available:   product.Stock,
			}
			msg := fmt.Sprintf("Not enough stock for %s. Available: %d. Sale not recorded.", product.Name, product.Stock)
			return domain.Sale{}, l.reject(msg, err)
		}

		items = append(items, domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.SellingPrice,
			UnitCost:    product.PurchasePrice,
		})
		totalAmount += product.SellingPrice * float64(line.Quantity)
		totalCost += product.PurchasePrice * float64(line.Quantity)

		product.Stock -= line.Quantity
		updated[idx] = product
	}

	sale := domain.Sale{
		ID:          xid.New("sal"),
		Date:        in.Date,
		Items:       items,
		TotalAmount: totalAmount,
		TotalCost:   totalCost,
		CreatedAt:   nowStamp(),
	}

	sales := append([]domain.Sale{sale}, l.sales...)
	sortSales(sales)

	// Stock decrements and the new sale land as one persisted batch; neither
	// collection is committed in memory unless both writes succeed.
	if err := l.persist(ctx, kvstore.KeyProducts, updated); err != nil {
		return domain.Sale{}, l.reject("Failed to record sale.", err)
	}
	if err := l.persist(ctx, kvstore.KeySales, sales); err != nil {
		return domain.Sale{}, l.reject("Failed to record sale.", err)
	}
	l.products = updated
	l.sales = sales

	l.notifier.Show("Sale recorded successfully.", notify.KindSuccess)
	return cloneSale(sale), nil
}

// DeleteSales purges the matching sale records. Stock decremented by those
// sales is deliberately not restored: deletion corrects the ledger, it does
// not undo the sale.
func (l *Ledger) DeleteSales(ctx context.Context, ids []string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	sales := make([]domain.Sale, 0, len(l.sales))
	for _, sale := range l.sales {
		if !drop[sale.ID] {
			sales = append(sales, sale)
		}
	}
	removed := len(l.sales) - len(sales)
	if removed == 0 {
		return 0, nil
	}

	if err := l.persist(ctx, kvstore.KeySales, sales); err != nil {
		return 0, l.reject("Failed to delete sales.", err)
	}
	l.sales = sales

	l.notifier.Show(fmt.Sprintf("%d sales record(s) deleted.", removed), notify.KindDelete)
	return removed, nil
}

// Sales returns the sale history, newest first.
func (l *Ledger) Sales() []domain.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Sale, len(l.sales))
	for i, sale := range l.sales {
		out[i] = cloneSale(sale)
	}
	return out
}

func cloneSale(sale domain.Sale) domain.Sale {
	sale.Items = slices.Clone(sale.Items)
	return sale
}
