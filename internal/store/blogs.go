package store

import (
	"context" // Per-call deadlines
	"time"    // Timeouts

	"blood_donation/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // Filters and updates
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
)

// Blogs is the blog posts collection.
type Blogs struct {
	base
}

// NewBlogs binds the blogs collection of db
func NewBlogs(db *mongo.Database, timeout time.Duration) *Blogs {
	return &Blogs{base: newBase(db, BlogsCollection, timeout)}
}

// Insert stores a new post under a fresh id
func (s *Blogs) Insert(ctx context.Context, b domain.Blog) (domain.InsertResult, error) {
	b.ID = primitive.NewObjectID()
	return s.insert(ctx, b)
}

// List returns posts, optionally restricted to one status
func (s *Blogs) List(ctx context.Context, status string, p Page) ([]domain.Blog, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[domain.Blog](ctx, s.base, filter, p)
}

// FindByID returns one post
func (s *Blogs) FindByID(ctx context.Context, id primitive.ObjectID) (domain.Blog, error) {
	var b domain.Blog
	if err := s.findByID(ctx, id, &b); err != nil {
		return domain.Blog{}, err
	}
	return b, nil
}

// Patch merges the set fields of p, upserting under id
func (s *Blogs) Patch(ctx context.Context, id primitive.ObjectID, p domain.BlogPatch) (domain.UpdateResult, error) {
	return s.patch(ctx, id, p)
}

// SetStatus publishes or unpublishes an existing post
func (s *Blogs) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	return s.setField(ctx, id, "status", status)
}

// Delete removes one post; a miss is NotFound
func (s *Blogs) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return s.deleteByID(ctx, id)
}
