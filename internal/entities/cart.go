package entities

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to the cart subtotal.
var TaxRate = decimal.NewFromFloat(0.02)

// CartLine is one catalog item pending purchase.
type CartLine struct {
	FoodID    int64
	Title     string
	ImagePath string
	UnitPrice decimal.Decimal
	Quantity  int
}

type Cart []CartLine

func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// Tax is 2% of the subtotal, rounded half-up on the cent boundary.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// Total is the exact sum of its parts; no rounding beyond the tax step.
func Total(subtotal, tax, deliveryFee decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax).Add(deliveryFee)
}

// CartSummary is the live totals breakdown recomputed on every cart mutation.
type CartSummary struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

func Summarize(cart Cart, deliveryFee decimal.Decimal) CartSummary {
	subtotal := cart.Subtotal()
	tax := Tax(subtotal)
	return CartSummary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       Total(subtotal, tax, deliveryFee),
	}
}

// GatewayAmount converts a display-currency total to the integer minor-unit
// string the payment gateway expects. The gateway contract is one thousand
// minor units per display unit; the factor is opaque and must not be derived
// from anything else.
func GatewayAmount(total decimal.Decimal) string {
	return strconv.FormatInt(total.Shift(3).Round(0).IntPart(), 10)
}
