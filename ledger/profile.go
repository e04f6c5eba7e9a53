package ledger

import (
	"context"
	"fmt"
	"strings"

	"dokanbook/domain"
	"dokanbook/kvstore"
	"dokanbook/notify"
)

// CompanyProfile always returns a usable profile; before the first update it
// is the documented default.
func (l *Ledger) CompanyProfile() domain.CompanyProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.profile
}

// UpdateCompanyProfile replaces the singleton wholesale. There are no merge
// semantics.
func (l *Ledger) UpdateCompanyProfile(ctx context.Context, profile domain.CompanyProfile) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(profile.CompanyName) == "" {
		err := fmt.Errorf("%w: company name is required", ErrInvalidInput)
		return l.reject(err.Error(), err)
	}

	if err := l.persist(ctx, kvstore.KeyCompanyProfile, profile); err != nil {
		return l.reject("Failed to save company profile.", err)
	}
	l.profile = profile

	l.notifier.Show("Company profile updated.", notify.KindSuccess)
	return nil
}
