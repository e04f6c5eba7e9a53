package ledger

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dokanbook/domain"
	"dokanbook/format"
	"dokanbook/internal/xid"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

func validateExpenseInput(in domain.ExpenseInput) error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown expense type %q", ErrInvalidInput, in.Type)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: expense amount must be positive", ErrInvalidInput)
	}
	if !format.ValidDate(in.Date) {
		return fmt.Errorf("%w: expense date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

func (l *Ledger) AddExpense(ctx context.Context, in domain.ExpenseInput) (domain.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := validateExpenseInput(in); err != nil {
		return domain.Expense{}, l.reject(err.Error(), err)
	}

	expense := domain.Expense{
		ID:          xid.New("exp"),
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
	}

	expenses := append(slices.Clone(l.expenses), expense)
	sortExpenses(expenses)

	if err := l.persist(ctx, kvstore.KeyExpenses, expenses); err != nil {
		return domain.Expense{}, l.reject("Failed to save expense.", err)
	}
	l.expenses = expenses

	l.notifier.Show("Expense added successfully.", notify.KindSuccess)
	return expense, nil
}

func (l *Ledger) UpdateExpense(ctx context.Context, updated domain.Expense) (domain.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.expenses, func(e domain.Expense) bool { return e.ID == updated.ID })
	if idx < 0 {
		err := fmt.Errorf("%w: expense %s", ErrNotFound, updated.ID)
		return domain.Expense{}, l.reject("Expense not found.", err)
	}
	if err := validateExpenseInput(domain.ExpenseInput{
		Type:        updated.Type,
		Description: updated.Description,
		Amount:      updated.Amount,
		Date:        updated.Date,
	}); err != nil {
		return domain.Expense{}, l.reject(err.Error(), err)
	}

	expenses := slices.Clone(l.expenses)
	expenses[idx] = updated
	sortExpenses(expenses)

	if err := l.persist(ctx, kvstore.KeyExpenses, expenses); err != nil {
		return domain.Expense{}, l.reject("Failed to save expense.", err)
	}
	l.expenses = expenses

	l.notifier.Show("Expense updated successfully.", notify.KindSuccess)
	return updated, nil
}

func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.expenses, func(e domain.Expense) bool { return e.ID == id })
	if idx < 0 {
		err := fmt.Errorf("%w: expense %s", ErrNotFound, id)
		return l.reject("Expense not found.", err)
	}

	expenses := slices.Delete(slices.Clone(l.expenses), idx, idx+1)
	if err := l.persist(ctx, kvstore.KeyExpenses, expenses); err != nil {
		return l.reject("Failed to delete expense.", err)
	}
	l.expenses = expenses

	l.notifier.Show("Expense deleted.", notify.KindDelete)
	return nil
}

// Expenses returns the collection sorted by date, newest first.
func (l *Ledger) Expenses() []domain.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.expenses)
}
