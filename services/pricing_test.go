package services

import (
	"testing"

	"github.com/akhilgolj/plantopiawebsite-final/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleCart() []entity.CartItem {
	return []entity.CartItem{
		{Name: "Jackfruit Burger", UnitPrice: d("12.00"), Qty: 2},
		{Name: "Hibiscus Cooler", UnitPrice: d("4.50"), Qty: 1},
	}
}

func TestComputeSummaryPickup(t *testing.T) {
	sum := ComputeSummary(sampleCart(), MethodPickup, decimal.Zero)

	assert.Equal(t, "28.50", sum.Subtotal.StringFixed(2))
	assert.Equal(t, "2.28", sum.Tax.StringFixed(2))
	assert.Equal(t, "0.00", sum.DeliveryFee.StringFixed(2))
	assert.Equal(t, "30.78", sum.Total.StringFixed(2))
}

func TestComputeSummaryDeliveryAddsFlatFee(t *testing.T) {
	pickup := ComputeSummary(sampleCart(), MethodPickup, decimal.Zero)
	delivery := ComputeSummary(sampleCart(), MethodDelivery, decimal.Zero)

	assert.Equal(t, "5.00", delivery.DeliveryFee.StringFixed(2))
	assert.Equal(t, "5.00", delivery.Total.Sub(pickup.Total).StringFixed(2))
}

// Doubling every quantity doubles subtotal and tax; fee and discount stay
// put.
func TestComputeSummaryLinearInQuantity(t *testing.T) {
	base := sampleCart()
	doubled := sampleCart()
	for i := range doubled {
		doubled[i].Qty *= 2
	}

	discount := d("1.50")
	a := ComputeSummary(base, MethodDelivery, discount)
	b := ComputeSummary(doubled, MethodDelivery, discount)

	assert.True(t, b.Subtotal.Equal(a.Subtotal.Mul(decimal.NewFromInt(2))))
	assert.True(t, b.Tax.Equal(a.Tax.Mul(decimal.NewFromInt(2))))
	assert.True(t, b.DeliveryFee.Equal(a.DeliveryFee))
	assert.True(t, b.Discount.Equal(a.Discount))
}

// A discount larger than subtotal+tax+fee goes negative; we keep the
// source behavior and leave clamping to the caller.
func TestComputeSummaryDoesNotClampNegativeTotal(t *testing.T) {
	sum := ComputeSummary(sampleCart(), MethodPickup, d("100.00"))
	assert.True(t, sum.Total.IsNegative())
}

func TestComputeSummaryEmptyCart(t *testing.T) {
	sum := ComputeSummary(nil, MethodDelivery, decimal.Zero)
	assert.Equal(t, "0.00", sum.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", sum.Total.StringFixed(2))
}
