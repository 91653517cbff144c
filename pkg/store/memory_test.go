package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minishop/go-api/pkg/models"
)

func TestMemoryStoreSeededCatalog(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	products, err := m.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)

	p, err := m.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", p.Name)
	assert.Equal(t, 99.99, p.Price)

	_, err = m.GetProduct(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReplaceCatalog(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	err := m.ReplaceCatalog(ctx, []*models.Product{
		{ID: "x", Name: "Only Product", Price: 1.00},
	})
	require.NoError(t, err)

	products, err := m.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Only Product", products[0].Name)
}

func TestMemoryStoreCartRoundTrip(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	// First access yields an empty cart without persisting it.
	cart, err := m.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)

	cart.AddProduct(&models.Product{ID: "1", Name: "Wireless Headphones", Price: 99.99}, 2)
	require.NoError(t, m.SaveCart(ctx, cart))

	loaded, err := m.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.InDelta(t, 199.98, loaded.Total, 0.01)

	// Mutating the loaded copy must not leak into the store.
	loaded.Items[0].Qty = 50
	again, err := m.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Qty)
}

func TestMemoryStoreCartSessionIsolation(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	cartA, _ := m.GetCart(ctx, "a")
	cartA.AddProduct(&models.Product{ID: "1", Price: 10.00}, 1)
	require.NoError(t, m.SaveCart(ctx, cartA))

	cartB, err := m.GetCart(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, cartB.Items)
}

func TestMemoryStoreClearCart(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	cart, _ := m.GetCart(ctx, "s1")
	cart.AddProduct(&models.Product{ID: "1", Price: 10.00}, 1)
	require.NoError(t, m.SaveCart(ctx, cart))

	require.NoError(t, m.ClearCart(ctx, "s1"))

	loaded, err := m.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
	assert.Equal(t, 0.0, loaded.Total)
}

func TestMemoryStoreOrders(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	first, err := models.NewOrder("Jane", "jane@example.com", []models.CartLineItem{
		{ID: "a", Price: 10.00, Qty: 2},
	})
	require.NoError(t, err)
	second, err := models.NewOrder("John", "john@example.com", []models.CartLineItem{
		{ID: "b", Price: 30.00, Qty: 1},
	})
	require.NoError(t, err)

	require.NoError(t, m.CreateOrder(ctx, first))
	require.NoError(t, m.CreateOrder(ctx, second))

	orders, err := m.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Newest first.
	assert.Equal(t, "John", orders[0].BuyerName)
	assert.Equal(t, "Jane", orders[1].BuyerName)

	summary, err := m.SalesSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.OrderCount)
	assert.InDelta(t, 50.00, summary.GrossRevenue, 0.01)
	assert.InDelta(t, 25.00, summary.AverageOrder, 0.01)
}

func TestMemoryStoreSalesSummaryEmpty(t *testing.T) {
	m := NewMemoryStore()

	summary, err := m.SalesSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.OrderCount)
	assert.Equal(t, 0.0, summary.GrossRevenue)
	assert.Equal(t, 0.0, summary.AverageOrder)
}
