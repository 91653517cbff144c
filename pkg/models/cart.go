package models

import "time"

// CartLineItem is one product-and-quantity entry in a cart. Name and Price are
// copied from the Product when the line is created, so later catalog price
// changes do not retroactively affect an existing cart. Qty is always >= 1; a
// line whose quantity drops to zero is removed, never stored.
type CartLineItem struct {
	ID        string  `json:"id" bson:"id"`
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Qty       int     `json:"qty" bson:"qty"`
}

// Cart holds the line items one session intends to purchase. Total is derived
// and must equal the sum of price*qty over all items immediately after every
// mutation.
type Cart struct {
	SessionID string         `json:"-" bson:"session_id"`
	Items     []CartLineItem `json:"items" bson:"items"`
	Total     float64        `json:"total" bson:"total"`
	UpdatedAt time.Time      `json:"-" bson:"updated_at"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartLineItem{},
		Total:     0,
	}
}

// CalculateTotal re-derives the cart total from the full item list. Totals are
// never adjusted incrementally, so rounding error cannot accumulate across
// mutations. O(n) per call, with n small.
func CalculateTotal(items []CartLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

func (c *Cart) recalculate() {
	c.Total = CalculateTotal(c.Items)
	c.UpdatedAt = time.Now().UTC()
}

// AddProduct adds qty units of the product to the cart. A second add of the
// same product increments the existing line rather than appending a duplicate.
// A qty below 1 is treated as 1.
func (c *Cart) AddProduct(product *Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Qty += qty
			c.recalculate()
			return
		}
	}
	c.Items = append(c.Items, CartLineItem{
		ID:        NewID(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
	})
	c.recalculate()
}

// SetQuantity sets the quantity of the line item in place. A qty <= 0 removes
// the line instead, matching RemoveItem semantics. Returns false when qty is
// positive and no line matches the identifier.
func (c *Cart) SetQuantity(lineItemID string, qty int) bool {
	if qty <= 0 {
		c.RemoveItem(lineItemID)
		return true
	}
	for i := range c.Items {
		if c.Items[i].ID == lineItemID {
			c.Items[i].Qty = qty
			c.recalculate()
			return true
		}
	}
	return false
}

// RemoveItem drops the matching line item. Removing an identifier that is not
// in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(lineItemID string) {
	items := make([]CartLineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != lineItemID {
			items = append(items, item)
		}
	}
	c.Items = items
	c.recalculate()
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
	c.recalculate()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Matches reports whether the submitted items agree with the cart's current
// contents line for line. Checkout uses this to reject a client whose cached
// copy of the cart has diverged from server state.
func (c *Cart) Matches(items []CartLineItem) bool {
	if len(items) != len(c.Items) {
		return false
	}
	current := make(map[string]CartLineItem, len(c.Items))
	for _, item := range c.Items {
		current[item.ID] = item
	}
	for _, submitted := range items {
		item, ok := current[submitted.ID]
		if !ok {
			// Unknown ID, or the same line submitted twice.
			return false
		}
		if item.Qty != submitted.Qty || item.Price != submitted.Price || item.ProductID != submitted.ProductID {
			return false
		}
		delete(current, submitted.ID)
	}
	return true
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

// UpdateCartItemRequest carries the new absolute quantity for a line item.
// Zero (or negative) means remove.
type UpdateCartItemRequest struct {
	Qty int `json:"qty"`
}
