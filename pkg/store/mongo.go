package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/minishop/go-api/pkg/global"
	"github.com/minishop/go-api/pkg/models"
)

// MongoStore is the durable Store implementation. Products, carts, and orders
// live in their own collections; carts are keyed by session_id and upserted
// whole, relying on per-document write serialization.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, err
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *MongoStore) Name() string { return "mongodb" }

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection("products").Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.collection("products").FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *MongoStore) CreateProducts(ctx context.Context, products []*models.Product) error {
	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err := s.collection("products").InsertMany(ctx, docs)
	return err
}

// ReplaceCatalog wipes and reloads the products collection. Used by the seed
// tool only.
func (s *MongoStore) ReplaceCatalog(ctx context.Context, products []*models.Product) error {
	if _, err := s.collection("products").DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	return s.CreateProducts(ctx, products)
}

func (s *MongoStore) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.collection("carts").FindOne(ctx, bson.D{{Key: "session_id", Value: sessionID}}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewCart(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	return &cart, nil
}

func (s *MongoStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	filter := bson.D{{Key: "session_id", Value: cart.SessionID}}
	_, err := s.collection("carts").ReplaceOne(ctx, filter, cart, options.Replace().SetUpsert(true))
	return err
}

func (s *MongoStore) ClearCart(ctx context.Context, sessionID string) error {
	_, err := s.collection("carts").DeleteOne(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	return err
}

func (s *MongoStore) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := s.collection("orders").InsertOne(ctx, order)
	return err
}

func (s *MongoStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.collection("orders").Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoStore) SalesSummary(ctx context.Context) (*SalesSummary, error) {
	pipeline := bson.A{
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "order_count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "gross_revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
				{Key: "average_order", Value: bson.D{{Key: "$avg", Value: "$total"}}},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "order_count", Value: 1},
				{Key: "gross_revenue", Value: bson.D{{Key: "$round", Value: bson.A{"$gross_revenue", 2}}}},
				{Key: "average_order", Value: bson.D{{Key: "$round", Value: bson.A{"$average_order", 2}}}},
			}},
		},
	}

	cursor, err := s.collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []SalesSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return &SalesSummary{}, nil
	}
	return &summaries[0], nil
}
