package api

import (
	"context" // Context for store calls
	"time"    // Cache lifetime

	"blood_donation/internal/domain" // Importing domain models
	"blood_donation/internal/store"  // Paging and filters

	"github.com/redis/go-redis/v9"               // Redis client
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
)

// UserStore is the users collection as seen by the handlers
type UserStore interface {
	Insert(ctx context.Context, u domain.User) (domain.InsertResult, error)
	List(ctx context.Context, status string, p store.Page) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
	Patch(ctx context.Context, id primitive.ObjectID, p domain.UserPatch) (domain.UpdateResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error)
}

// DonationStore is the donation requests collection
type DonationStore interface {
	Insert(ctx context.Context, d domain.Donation) (domain.InsertResult, error)
	List(ctx context.Context, f store.DonationFilter, p store.Page) ([]domain.Donation, error)
	Count(ctx context.Context, f store.DonationFilter) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (domain.Donation, error)
	Patch(ctx context.Context, id primitive.ObjectID, p domain.DonationPatch) (domain.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

// BlogStore is the blog posts collection
type BlogStore interface {
	Insert(ctx context.Context, b domain.Blog) (domain.InsertResult, error)
	List(ctx context.Context, status string, p store.Page) ([]domain.Blog, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (domain.Blog, error)
	Patch(ctx context.Context, id primitive.ObjectID, p domain.BlogPatch) (domain.UpdateResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

// PaymentStore covers staged and finalized payment amounts
type PaymentStore interface {
	StagePending(ctx context.Context, a domain.AmountPending) (domain.InsertResult, error)
	ListPending(ctx context.Context, email string) ([]domain.AmountPending, error)
	ClearPending(ctx context.Context, email string) (domain.DeleteResult, error)
	Record(ctx context.Context, a domain.AmountDone) (domain.InsertResult, error)
	ListDone(ctx context.Context, email string) ([]domain.AmountDone, error)
}

// StatsSource computes the dashboard aggregate
type StatsSource interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// IntentCreator requests payment processor client secrets
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Pinger checks database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps is everything the router wires into handlers
type Deps struct {
	Users     UserStore
	Donations DonationStore
	Blogs     BlogStore
	Payments  PaymentStore
	Stats     StatsSource
	Intents   IntentCreator
	DB        Pinger        // Optional, backs /healthz
	Redis     *redis.Client // Optional cache
	CacheTTL  time.Duration
	JWTSecret string
}
