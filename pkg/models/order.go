package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Order is the immutable snapshot created at checkout time. Orders are
// persisted indefinitely and never mutated.
type Order struct {
	ID         string         `json:"id" bson:"_id"`
	BuyerName  string         `json:"buyerName" bson:"buyer_name"`
	BuyerEmail string         `json:"buyerEmail" bson:"buyer_email"`
	Items      []CartLineItem `json:"items" bson:"items"`
	Total      float64        `json:"total" bson:"total"`
	Timestamp  time.Time      `json:"timestamp" bson:"timestamp"`
}

type CheckoutRequest struct {
	CartItems  []CartLineItem `json:"cartItems"`
	BuyerName  string         `json:"buyerName"`
	BuyerEmail string         `json:"buyerEmail"`
}

// Receipt is the summary returned to the buyer after a successful checkout.
// The timestamp is included both machine-readable and locale-formatted.
type Receipt struct {
	BuyerName          string         `json:"buyerName"`
	BuyerEmail         string         `json:"buyerEmail"`
	Total              float64        `json:"total"`
	Timestamp          string         `json:"timestamp"`
	FormattedTimestamp string         `json:"formattedTimestamp"`
	Items              []CartLineItem `json:"items"`
}

type CheckoutResponse struct {
	Success bool    `json:"success"`
	Receipt Receipt `json:"receipt"`
}

// IsValidEmail checks for a recognizable local@domain shape. Full RFC 5322
// validation is deliberately out of scope for a demo checkout.
func IsValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	if parts[0] == "" || parts[1] == "" {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

// ValidateBuyer checks the buyer fields a checkout must carry.
func ValidateBuyer(name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: buyer name and email are required", ErrInvalidInput)
	}
	if !IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}

// NewOrder validates the buyer and items and builds the immutable order
// snapshot. The total is re-derived from the items passed in.
func NewOrder(buyerName, buyerEmail string, items []CartLineItem) (*Order, error) {
	if err := ValidateBuyer(buyerName, buyerEmail); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	snapshot := make([]CartLineItem, len(items))
	copy(snapshot, items)
	return &Order{
		ID:         NewID(),
		BuyerName:  buyerName,
		BuyerEmail: buyerEmail,
		Items:      snapshot,
		Total:      CalculateTotal(snapshot),
		Timestamp:  time.Now().UTC(),
	}, nil
}

// BuildReceipt renders the order as the response payload the storefront shows
// after checkout.
func (o *Order) BuildReceipt() Receipt {
	return Receipt{
		BuyerName:          o.BuyerName,
		BuyerEmail:         o.BuyerEmail,
		Total:              o.Total,
		Timestamp:          o.Timestamp.Format(time.RFC3339),
		FormattedTimestamp: o.Timestamp.Format("1/2/2006, 3:04:05 PM"),
		Items:              o.Items,
	}
}
