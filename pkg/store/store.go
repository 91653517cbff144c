package store

import (
	"context"
	"errors"
	"log"

	"github.com/minishop/go-api/pkg/global"
	"github.com/minishop/go-api/pkg/models"
)

// ErrNotFound is returned when a product, cart, or order does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary. Exactly one implementation is selected at
// process startup; nothing probes connection state per request.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProducts(ctx context.Context, products []*models.Product) error
	ReplaceCatalog(ctx context.Context, products []*models.Product) error

	// GetCart returns the session's cart, creating an empty one on first
	// access. SaveCart persists the full cart document; the last write wins.
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	ClearCart(ctx context.Context, sessionID string) error

	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	SalesSummary(ctx context.Context) (*SalesSummary, error)

	Name() string
	Ping(ctx context.Context) error
}

type SalesSummary struct {
	OrderCount   int     `json:"order_count" bson:"order_count"`
	GrossRevenue float64 `json:"gross_revenue" bson:"gross_revenue"`
	AverageOrder float64 `json:"average_order" bson:"average_order"`
}

// Open selects the storage backend once at startup. Without a MONGODB_URI the
// in-memory store is used; a configured but unreachable deployment logs the
// failure and degrades to memory so the demo stays usable without
// infrastructure, at the cost of durability.
func Open() Store {
	uri := global.GetMongoURI()
	if uri == "" {
		log.Println("MONGODB_URI not set - using in-memory storage")
		return NewMemoryStore()
	}

	ms, err := NewMongoStore(uri, global.GetDatabaseName())
	if err != nil {
		log.Printf("MongoDB connection failed, using in-memory storage: %v", err)
		return NewMemoryStore()
	}
	log.Println("Connected to MongoDB successfully")
	return ms
}
