package store

import (
	"context" // Per-call deadlines
	"time"    // Timeouts

	"blood_donation/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // Filters and updates
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
)

// Users is the users collection.
type Users struct {
	base
}

// NewUsers binds the users collection of db
func NewUsers(db *mongo.Database, timeout time.Duration) *Users {
	return &Users{base: newBase(db, UsersCollection, timeout)}
}

// Insert stores a new user under a fresh id
func (s *Users) Insert(ctx context.Context, u domain.User) (domain.InsertResult, error) {
	u.ID = primitive.NewObjectID()
	return s.insert(ctx, u)
}

// List returns users, optionally restricted to one status.
func (s *Users) List(ctx context.Context, status string, p Page) ([]domain.User, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[domain.User](ctx, s.base, filter, p)
}

// FindByEmail returns the user registered with email; a miss is NotFound
func (s *Users) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	if err := s.findOne(ctx, bson.M{"email": email}, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// FindByID returns one user
func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	var u domain.User
	if err := s.findByID(ctx, id, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Patch merges the set fields of p, upserting under id
func (s *Users) Patch(ctx context.Context, id primitive.ObjectID, p domain.UserPatch) (domain.UpdateResult, error) {
	return s.patch(ctx, id, p)
}

// SetRole changes the role of an existing user
func (s *Users) SetRole(ctx context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error) {
	return s.setField(ctx, id, "role", role)
}

// SetStatus changes the account status of an existing user
func (s *Users) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	return s.setField(ctx, id, "status", status)
}

// Count is an estimated, metadata-based count.
func (s *Users) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, nil)
}
