package db

import (
	"context" // Connection deadlines
	"time"    // Ping timeout

	"blood_donation/internal/config" // Connection settings

	"github.com/sirupsen/logrus"                 // Logging
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Client options
	"go.mongodb.org/mongo-driver/mongo/readpref" // Ping read preference
)

// Connect opens the pooled client and pings the deployment
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)).
		SetMaxPoolSize(cfg.DBMaxPool).
		SetServerSelectionTimeout(cfg.DBTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logrus.WithField("database", cfg.DBName).Info("Pinged your deployment. Connected to MongoDB")
	return client, nil
}

// Pinger checks reachability of a connected client
type Pinger struct {
	Client  *mongo.Client
	Timeout time.Duration
}

// Ping reports whether the primary answers within the timeout
func (p Pinger) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return p.Client.Ping(ctx, readpref.Primary())
}
