// Package store holds the Mongo-backed collections of the service. Every call
// runs under its own deadline and returns apperr-classified errors.
package store

import (
	"context" // Per-call deadlines
	"errors"  // Error matching
	"time"    // Timeouts

	"blood_donation/internal/apperr" // Error kinds
	"blood_donation/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // Filters and updates
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Find and update options
)

// Collection names
const (
	UsersCollection         = "users"
	DonationsCollection     = "donations"
	BlogsCollection         = "blogs"
	AmountPendingCollection = "amountPending"
	AmountDoneCollection    = "amountDone"
)

// Page selects a window of a find-many. A zero Limit returns every match.
type Page struct {
	Skip  int64
	Limit int64
}

// findOptions leaves Skip and Limit unset when they are not positive
func (p Page) findOptions() *options.FindOptions {
	opts := options.Find()
	if p.Skip > 0 {
		opts.SetSkip(p.Skip)
	}
	if p.Limit > 0 {
		opts.SetLimit(p.Limit)
	}
	return opts
}

// base carries the collection and per-call deadline shared by every store.
type base struct {
	c       *mongo.Collection
	timeout time.Duration
}

func newBase(db *mongo.Database, name string, timeout time.Duration) base {
	return base{c: db.Collection(name), timeout: timeout}
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

func (b base) insert(ctx context.Context, doc any) (domain.InsertResult, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	res, err := b.c.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertResult{}, classify(err, "insert "+b.c.Name())
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (b base) findByID(ctx context.Context, id primitive.ObjectID, out any) error {
	return b.findOne(ctx, bson.M{"_id": id}, out)
}

func (b base) findOne(ctx context.Context, filter bson.M, out any) error {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	if err := b.c.FindOne(ctx, filter).Decode(out); err != nil {
		return classify(err, "find "+b.c.Name())
	}
	return nil
}

// patch applies the non-nil fields of fields with $set, inserting under id when nothing matches.
func (b base) patch(ctx context.Context, id primitive.ObjectID, fields any) (domain.UpdateResult, error) {
	set, err := setFields(fields)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return b.update(ctx, id, set, true)
}

// setField updates one field of an existing document; a miss is NotFound.
func (b base) setField(ctx context.Context, id primitive.ObjectID, key, value string) (domain.UpdateResult, error) {
	res, err := b.update(ctx, id, bson.M{key: value}, false)
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, apperr.New(apperr.NotFound, b.c.Name()+" document not found")
	}
	return res, nil
}

func (b base) update(ctx context.Context, id primitive.ObjectID, set bson.M, upsert bool) (domain.UpdateResult, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	opts := options.Update().SetUpsert(upsert)
	res, err := b.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return domain.UpdateResult{}, classify(err, "update "+b.c.Name())
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (b base) deleteByID(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	res, err := b.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.DeleteResult{}, classify(err, "delete "+b.c.Name())
	}
	if res.DeletedCount == 0 {
		return domain.DeleteResult{Acknowledged: true}, apperr.New(apperr.NotFound, b.c.Name()+" document not found")
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// count uses collection metadata when filter is empty and an exact count otherwise.
func (b base) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	var (
		n   int64
		err error
	)
	if len(filter) == 0 {
		n, err = b.c.EstimatedDocumentCount(ctx)
	} else {
		n, err = b.c.CountDocuments(ctx, filter)
	}
	if err != nil {
		return 0, classify(err, "count "+b.c.Name())
	}
	return n, nil
}

// findAll decodes every match of filter in p; no match is an empty, non-nil slice
func findAll[T any](ctx context.Context, b base, filter bson.M, p Page) ([]T, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()
	cur, err := b.c.Find(ctx, filter, p.findOptions())
	if err != nil {
		return nil, classify(err, "find "+b.c.Name())
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify(err, "decode "+b.c.Name())
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// setFields flattens a patch struct into a $set document, dropping nil fields.
func setFields(patch any) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, apperr.Wrap(apperr.BadRequest, "invalid update body", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, apperr.Wrap(apperr.BadRequest, "invalid update body", err)
	}
	if len(set) == 0 {
		return nil, apperr.New(apperr.BadRequest, "no updatable fields in body")
	}
	return set, nil
}

// ParseID converts a path identifier into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.BadRequest, "invalid id", err)
	}
	return id, nil
}

// classify maps driver errors onto apperr kinds.
func classify(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperr.Wrap(apperr.NotFound, "document not found", err)
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return apperr.Wrap(apperr.Timeout, op+" timed out", err)
	case errors.Is(err, context.Canceled):
		return apperr.Wrap(apperr.Timeout, op+" canceled", err)
	default:
		return apperr.Wrap(apperr.UpstreamFailure, op+" failed", err)
	}
}
