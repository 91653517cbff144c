package store

import (
	"context"
	"sync"

	"github.com/minishop/go-api/pkg/models"
)

// MemoryStore keeps everything in process memory. It starts pre-seeded with
// the default catalog and serves identical semantics to the Mongo store, with
// no persistence across restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	products []models.Product
	carts    map[string]*models.Cart
	orders   []models.Order
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		carts: make(map[string]*models.Cart),
	}
	for _, p := range models.DefaultCatalog() {
		m.products = append(m.products, *p)
	}
	return m
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProducts(ctx context.Context, products []*models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range products {
		m.products = append(m.products, *p)
	}
	return nil
}

func (m *MemoryStore) ReplaceCatalog(ctx context.Context, products []*models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = m.products[:0]
	for _, p := range products {
		m.products = append(m.products, *p)
	}
	return nil
}

func (m *MemoryStore) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cart, ok := m.carts[sessionID]
	if !ok {
		return models.NewCart(sessionID), nil
	}
	cp := *cart
	cp.Items = make([]models.CartLineItem, len(cart.Items))
	copy(cp.Items, cart.Items)
	return &cp, nil
}

func (m *MemoryStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *cart
	cp.Items = make([]models.CartLineItem, len(cart.Items))
	copy(cp.Items, cart.Items)
	m.carts[cart.SessionID] = &cp
	return nil
}

func (m *MemoryStore) ClearCart(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}

func (m *MemoryStore) CreateOrder(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *MemoryStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// newest first, matching the Mongo sort
	out := make([]models.Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}

func (m *MemoryStore) SalesSummary(ctx context.Context) (*SalesSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	summary := &SalesSummary{OrderCount: len(m.orders)}
	for _, o := range m.orders {
		summary.GrossRevenue += o.Total
	}
	if summary.OrderCount > 0 {
		summary.AverageOrder = summary.GrossRevenue / float64(summary.OrderCount)
	}
	return summary, nil
}
