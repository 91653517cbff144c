package store

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/minishop/go-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// One cart document per session.
	{
		CollectionName: "carts",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_cart_session_unique"),
		},
	},
	// Newest-first order listing.
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_order_timestamp"),
		},
	},
	// Buyer order history lookups.
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "buyer_email", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName("idx_order_buyer"),
		},
	},
}

func (s *MongoStore) EnsureIndexes() error {
	for _, idxConfig := range requiredIndexes {
		collection := s.collection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		cancel()
		if err != nil {
			log.Printf("Error creating index on collection %s: %v", idxConfig.CollectionName, err)
			return err
		}

		log.Printf("Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}
	return nil
}

// EnsureIndexesOnStartup logs and continues on failure; a missing index slows
// queries but must not take the demo down.
func (s *MongoStore) EnsureIndexesOnStartup() {
	if err := s.EnsureIndexes(); err != nil {
		log.Printf("Failed to ensure indexes: %v", err)
	}
}
