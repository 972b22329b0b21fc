package store

import (
	"context" // Per-call deadlines
	"time"    // Timeouts

	"blood_donation/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // Filters and updates
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
)

// DonationFilter narrows donation listings. Empty fields match everything.
type DonationFilter struct {
	DonorEmail string
	Status     string
}

func (f DonationFilter) bson() bson.M {
	m := bson.M{}
	if f.DonorEmail != "" {
		m["donorEmail"] = f.DonorEmail
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	return m
}

// Donations is the donation requests collection.
type Donations struct {
	base
}

// NewDonations binds the donations collection of db
func NewDonations(db *mongo.Database, timeout time.Duration) *Donations {
	return &Donations{base: newBase(db, DonationsCollection, timeout)}
}

// Insert stores a new donation request under a fresh id
func (s *Donations) Insert(ctx context.Context, d domain.Donation) (domain.InsertResult, error) {
	d.ID = primitive.NewObjectID()
	return s.insert(ctx, d)
}

// List returns the donation requests matching f
func (s *Donations) List(ctx context.Context, f DonationFilter, p Page) ([]domain.Donation, error) {
	return findAll[domain.Donation](ctx, s.base, f.bson(), p)
}

// Count is estimated when the filter is empty and exact otherwise.
func (s *Donations) Count(ctx context.Context, f DonationFilter) (int64, error) {
	return s.count(ctx, f.bson())
}

// FindByID returns one donation request
func (s *Donations) FindByID(ctx context.Context, id primitive.ObjectID) (domain.Donation, error) {
	var d domain.Donation
	if err := s.findByID(ctx, id, &d); err != nil {
		return domain.Donation{}, err
	}
	return d, nil
}

// Patch merges the set fields of p, upserting under id
func (s *Donations) Patch(ctx context.Context, id primitive.ObjectID, p domain.DonationPatch) (domain.UpdateResult, error) {
	return s.patch(ctx, id, p)
}

// SetStatus changes the status of an existing donation request
func (s *Donations) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	return s.setField(ctx, id, "status", status)
}

// Delete removes one donation request; a miss is NotFound
func (s *Donations) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return s.deleteByID(ctx, id)
}
