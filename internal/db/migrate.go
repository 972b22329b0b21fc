package db

import (
	"context" // Index creation deadline

	"blood_donation/internal/store" // Collection names

	"github.com/sirupsen/logrus"                // Logging
	"go.mongodb.org/mongo-driver/bson"          // Index keys
	"go.mongodb.org/mongo-driver/mongo"         // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options" // Index options
)

// indexes lists the lookup paths used by the handlers, per collection
var indexes = map[string][]mongo.IndexModel{
	store.UsersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("idx_users_email")},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("idx_users_status")},
	},
	store.DonationsCollection: {
		{Keys: bson.D{{Key: "donorEmail", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("idx_donations_donor_status")},
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("idx_donations_status")},
	},
	store.BlogsCollection: {
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("idx_blogs_status")},
	},
	store.AmountPendingCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("idx_amount_pending_email")},
	},
	store.AmountDoneCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("idx_amount_done_email")},
	},
}

// Migrate creates the indexes of every collection. Existing indexes are left as they are.
func Migrate(ctx context.Context, database *mongo.Database) error {
	for name, models := range indexes {
		created, err := database.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"collection": name, "indexes": created}).Info("Indexes ensured")
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
