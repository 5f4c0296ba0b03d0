package services

import (
	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/shopspring/decimal"
)

type DeliveryMethod string

const (
	MethodPickup   DeliveryMethod = "pickup"
	MethodDelivery DeliveryMethod = "delivery"
)

var (
	// TaxRate is applied to the subtotal of every order.
	TaxRate = decimal.RequireFromString("0.08")
	// DeliveryFee is flat and only charged on delivery orders.
	DeliveryFee = decimal.RequireFromString("5.00")
)

type OrderSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// Subtotal sums unit price x qty over the cart lines.
func Subtotal(items []entity.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return sum
}

// ComputeSummary prices a cart. Pure: callers recompute it on every cart
// mutation or method toggle. The total is NOT clamped when the discount
// exceeds subtotal+tax — promo minimums keep that from happening with the
// codes we ship.
func ComputeSummary(items []entity.CartItem, method DeliveryMethod, discount decimal.Decimal) OrderSummary {
	subtotal := Subtotal(items)
	tax := subtotal.Mul(TaxRate).Round(2)

	fee := decimal.Zero
	if method == MethodDelivery {
		fee = DeliveryFee
	}

	return OrderSummary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       subtotal.Add(tax).Add(fee).Sub(discount),
	}
}
