package entities_test

import (
	"testing"

	"github.com/mealio/food-order-service/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	deliveryFee := dec("10")

	testCases := []struct {
		name         string
		cart         entities.Cart
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name: "two items",
			cart: entities.Cart{
				{FoodID: 1, UnitPrice: dec("50000"), Quantity: 2},
			},
			wantSubtotal: "100000",
			wantTax:      "2000",
			wantTotal:    "102010",
		},
		{
			name: "tax rounds on the cent boundary",
			cart: entities.Cart{
				{FoodID: 1, UnitPrice: dec("12.34"), Quantity: 1},
			},
			wantSubtotal: "12.34",
			wantTax:      "0.25", // 0.2468
			wantTotal:    "22.59",
		},
		{
			name: "half cent rounds up",
			cart: entities.Cart{
				{FoodID: 1, UnitPrice: dec("10.25"), Quantity: 1},
			},
			wantSubtotal: "10.25",
			wantTax:      "0.21", // 0.205
			wantTotal:    "20.46",
		},
		{
			name:         "empty cart",
			cart:         entities.Cart{},
			wantSubtotal: "0",
			wantTax:      "0",
			wantTotal:    "10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := entities.Summarize(tc.cart, deliveryFee)

			assert.True(t, summary.Subtotal.Equal(dec(tc.wantSubtotal)),
				"subtotal = %s, want %s", summary.Subtotal, tc.wantSubtotal)
			assert.True(t, summary.Tax.Equal(dec(tc.wantTax)),
				"tax = %s, want %s", summary.Tax, tc.wantTax)
			assert.True(t, summary.DeliveryFee.Equal(deliveryFee))
			assert.True(t, summary.Total.Equal(dec(tc.wantTotal)),
				"total = %s, want %s", summary.Total, tc.wantTotal)
		})
	}
}

func TestSummarize_TotalIsExactSum(t *testing.T) {
	cart := entities.Cart{
		{FoodID: 1, UnitPrice: dec("3.33"), Quantity: 3},
		{FoodID: 2, UnitPrice: dec("7.77"), Quantity: 2},
	}

	summary := entities.Summarize(cart, dec("10"))
	sum := summary.Subtotal.Add(summary.Tax).Add(summary.DeliveryFee)

	assert.True(t, summary.Total.Equal(sum))
}

func TestGatewayAmount(t *testing.T) {
	testCases := []struct {
		total string
		want  string
	}{
		{"150", "150000"},
		{"102010", "102010000"},
		{"12.34", "12340"},
		{"0.0004", "0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, entities.GatewayAmount(dec(tc.total)), "total %s", tc.total)
	}
}
