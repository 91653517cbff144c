package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"a@b", true},
		{"jane.doe+tag@shop.example.co", true},
		{"", false},
		{"janeexample.com", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@@example.com", false},
		{"jane doe@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidateBuyer(t *testing.T) {
	assert.NoError(t, ValidateBuyer("Jane", "jane@example.com"))

	assert.ErrorIs(t, ValidateBuyer("", "jane@example.com"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBuyer("Jane", ""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBuyer("   ", "jane@example.com"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateBuyer("Jane", "not-an-email"), ErrInvalidInput)
}

func TestNewOrderEmptyItems(t *testing.T) {
	_, err := NewOrder("Jane", "jane@example.com", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = NewOrder("Jane", "jane@example.com", []CartLineItem{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrderSnapshot(t *testing.T) {
	items := []CartLineItem{
		{ID: "a", ProductID: "p1", Name: "Laptop Stand", Price: 29.99, Qty: 2},
		{ID: "b", ProductID: "p2", Name: "Phone Case", Price: 19.99, Qty: 1},
	}

	order, err := NewOrder("Jane", "jane@example.com", items)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Jane", order.BuyerName)
	assert.Equal(t, "jane@example.com", order.BuyerEmail)
	assert.InDelta(t, 79.97, order.Total, 0.01)
	assert.WithinDuration(t, time.Now().UTC(), order.Timestamp, 5*time.Second)

	// The order holds its own copy of the items.
	items[0].Qty = 99
	assert.Equal(t, 2, order.Items[0].Qty)
}

func TestBuildReceipt(t *testing.T) {
	order, err := NewOrder("Jane", "jane@example.com", []CartLineItem{
		{ID: "a", Price: 10.00, Qty: 2},
	})
	require.NoError(t, err)

	receipt := order.BuildReceipt()

	assert.Equal(t, order.BuyerName, receipt.BuyerName)
	assert.Equal(t, order.BuyerEmail, receipt.BuyerEmail)
	assert.Equal(t, order.Total, receipt.Total)
	assert.Equal(t, order.Items, receipt.Items)

	parsed, err := time.Parse(time.RFC3339, receipt.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, order.Timestamp, parsed, time.Second)
	assert.NotEmpty(t, receipt.FormattedTimestamp)
}
