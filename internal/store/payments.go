package store

import (
	"context" // Per-call deadlines
	"time"    // Timeouts

	"blood_donation/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // Filters and updates
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
)

// Payments covers the staged (amountPending) and finalized (amountDone) collections.
// Writes to the two collections are independent and not atomic.
type Payments struct {
	pending base
	done    base
}

// NewPayments binds the staged and finalized amount collections of db
func NewPayments(db *mongo.Database, timeout time.Duration) *Payments {
	return &Payments{
		pending: newBase(db, AmountPendingCollection, timeout),
		done:    newBase(db, AmountDoneCollection, timeout),
	}
}

// StagePending stores an amount awaiting payment
func (s *Payments) StagePending(ctx context.Context, a domain.AmountPending) (domain.InsertResult, error) {
	a.ID = primitive.NewObjectID()
	return s.pending.insert(ctx, a)
}

// ListPending returns the staged amounts of one payer
func (s *Payments) ListPending(ctx context.Context, email string) ([]domain.AmountPending, error) {
	return findAll[domain.AmountPending](ctx, s.pending, bson.M{"email": email}, Page{})
}

// ClearPending removes every staged amount of one payer.
func (s *Payments) ClearPending(ctx context.Context, email string) (domain.DeleteResult, error) {
	ctx, cancel := s.pending.withTimeout(ctx)
	defer cancel()
	res, err := s.pending.c.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return domain.DeleteResult{}, classify(err, "delete "+AmountPendingCollection)
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Record stores a finalized payment, stamping CreatedAt when unset
func (s *Payments) Record(ctx context.Context, a domain.AmountDone) (domain.InsertResult, error) {
	a.ID = primitive.NewObjectID()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return s.done.insert(ctx, a)
}

// ListDone returns the finalized payments of one payer
func (s *Payments) ListDone(ctx context.Context, email string) ([]domain.AmountDone, error) {
	return findAll[domain.AmountDone](ctx, s.done, bson.M{"email": email}, Page{})
}

// Revenue sums price over every finalized payment. No payments yields 0.
func (s *Payments) Revenue(ctx context.Context) (float64, error) {
	ctx, cancel := s.done.withTimeout(ctx)
	defer cancel()
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}},
	}
	cur, err := s.done.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, classify(err, "aggregate "+AmountDoneCollection)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return 0, classify(err, "aggregate "+AmountDoneCollection)
		}
		return 0, nil
	}
	var doc struct {
		Total float64 `bson:"total"`
	}
	if err := cur.Decode(&doc); err != nil {
		return 0, classify(err, "decode "+AmountDoneCollection)
	}
	return doc.Total, nil
}
