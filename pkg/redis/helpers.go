package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minishop/go-api/pkg/models"
)

// Catalog cache. The catalog is read-only between seedings, so entries get a
// long TTL and are invalidated explicitly when products are created or the
// catalog is reseeded.

const cacheTTL = 24 * time.Hour

const catalogKey = "products:all"

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

// CacheCatalog stores the full product list under one key.
func CacheCatalog(ctx context.Context, products []models.Product) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return client.Set(ctx, catalogKey, payload, cacheTTL).Err()
}

func GetCatalogFromCache(ctx context.Context) ([]models.Product, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, catalogKey).Result()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return products, nil
}

// CacheSingleProduct stores one product under its own key.
func CacheSingleProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID, err)
	}
	if err := client.Set(ctx, productKey(product.ID), payload, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache product %s: %w", product.ID, err)
	}
	return nil
}

func GetProductFromCache(ctx context.Context, id string) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(payload), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

// InvalidateCatalog removes the cached list and the given product entries.
func InvalidateCatalog(ctx context.Context, productIDs []string) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()
	pipe.Del(ctx, catalogKey)
	for _, id := range productIDs {
		pipe.Del(ctx, productKey(id))
	}
	_, err := pipe.Exec(ctx)
	return err
}
