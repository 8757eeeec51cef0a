package migration

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

var mongoIndexes = []indexSpec{
	{"users", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
	{"users", mongo.IndexModel{Keys: bson.D{{Key: "reference_id", Value: 1}}, Options: options.Index().SetUnique(true)}},
	{"users", mongo.IndexModel{Keys: bson.D{{Key: "role", Value: 1}, {Key: "tsm", Value: 1}}}},
	{"inquiries", mongo.IndexModel{Keys: bson.D{{Key: "ticket_number", Value: 1}}, Options: options.Index().SetUnique(true)}},
	{"inquiries", mongo.IndexModel{Keys: bson.D{{Key: "assigned_agent", Value: 1}, {Key: "created_at", Value: -1}}}},
	{"notifications", mongo.IndexModel{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "read", Value: 1}, {Key: "created_at", Value: -1}}}},
	{"assets", mongo.IndexModel{Keys: bson.D{{Key: "asset_tag", Value: 1}}, Options: options.Index().SetUnique(true)}},
	{"products", mongo.IndexModel{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)}},
	{"emails", mongo.IndexModel{Keys: bson.D{{Key: "sent_at", Value: -1}}}},
}

// EnsureIndexes creates the document store indexes. Creating an index that
// already exists with the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	log := logger.With("component", "database", "db_name", db.Name())
	for _, idx := range mongoIndexes {
		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, idx.Model)
		if err != nil {
			log.Error("mongo_index_failed", "status", "error", "collection", idx.Collection, "error_message", err.Error())
			return fmt.Errorf("create index on %s: %w", idx.Collection, err)
		}
		log.Info("mongo_index_ready", "status", "success", "collection", idx.Collection, "index", name)
	}
	return nil
}
