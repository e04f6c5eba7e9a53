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

func validateProductInput(in domain.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if in.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must not be negative", ErrInvalidInput)
	}
	if in.SellingPrice < 0 {
		return fmt.Errorf("%w: selling price must not be negative", ErrInvalidInput)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	return nil
}

func (l *Ledger) AddProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := validateProductInput(in); err != nil {
		return domain.Product{}, l.reject(err.Error(), err)
	}

	product := domain.Product{
		ID:            xid.New("prd"),
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Stock:         in.Stock,
		CreatedAt:     nowStamp(),
	}

	products := append(slices.Clone(l.products), product)
	sortProducts(products)

	if err := l.persist(ctx, kvstore.KeyProducts, products); err != nil {
		return domain.Product{}, l.reject("Failed to save product.", err)
	}
	l.products = products

	l.notifier.Show("Product added successfully.", notify.KindSuccess)
	return product, nil
}

func (l *Ledger) UpdateProduct(ctx context.Context, updated domain.Product) (domain.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.products, func(p domain.Product) bool { return p.ID == updated.ID })
	if idx < 0 {
		err := fmt.Errorf("%w: product %s", ErrNotFound, updated.ID)
		return domain.Product{}, l.reject("Product not found.", err)
	}
	if err := validateProductInput(domain.ProductInput{
		Name:          updated.Name,
		Description:   updated.Description,
		PurchasePrice: updated.PurchasePrice,
		SellingPrice:  updated.SellingPrice,
		Stock:         updated.Stock,
	}); err != nil {
		return domain.Product{}, l.reject(err.Error(), err)
	}

	// Creation time is owned by the service, not the caller.
	updated.Name = strings.TrimSpace(updated.Name)
	updated.CreatedAt = l.products[idx].CreatedAt

	products := slices.Clone(l.products)
	products[idx] = updated
	sortProducts(products)

	if err := l.persist(ctx, kvstore.KeyProducts, products); err != nil {
		return domain.Product{}, l.reject("Failed to save product.", err)
	}
	l.products = products

	l.notifier.Show("Product updated successfully.", notify.KindSuccess)
	return updated, nil
}

func (l *Ledger) DeleteProduct(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.products, func(p domain.Product) bool { return p.ID == id })
	if idx < 0 {
		err := fmt.Errorf("%w: product %s", ErrNotFound, id)
		return l.reject("Product not found.", err)
	}

	products := slices.Delete(slices.Clone(l.products), idx, idx+1)
	if err := l.persist(ctx, kvstore.KeyProducts, products); err != nil {
		return l.reject("Failed to delete product.", err)
	}
	l.products = products

	l.notifier.Show("Product deleted.", notify.KindDelete)
	return nil
}

// Products returns the collection sorted by name ascending.
func (l *Ledger) Products() []domain.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.products)
}

func (l *Ledger) ProductByID(id string) (domain.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
}
