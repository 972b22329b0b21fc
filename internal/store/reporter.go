package store

import (
	"context" // Per-call deadlines

	"blood_donation/internal/domain" // Importing domain models
)

// Reporter computes the dashboard aggregate across collections.
type Reporter struct {
	users     *Users
	donations *Donations
	payments  *Payments
}

// NewReporter combines the stores the dashboard reads from
func NewReporter(users *Users, donations *Donations, payments *Payments) *Reporter {
	return &Reporter{users: users, donations: donations, payments: payments}
}

// Stats counts users and donations and sums revenue, one query each
func (r *Reporter) Stats(ctx context.Context) (domain.Stats, error) {
	users, err := r.users.Count(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	donations, err := r.donations.Count(ctx, DonationFilter{})
	if err != nil {
		return domain.Stats{}, err
	}
	revenue, err := r.payments.Revenue(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{Users: users, Donations: donations, Revenue: revenue}, nil
}
