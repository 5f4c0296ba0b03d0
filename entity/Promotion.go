package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Promo kinds. Rate promos discount a fraction of the subtotal, flat
// promos take a fixed amount off.
const (
	PromoKindRate = "rate"
	PromoKindFlat = "flat"
)

type Promotion struct {
	gorm.Model
	Code   string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Detail string `json:"detail"`
	Kind   string `gorm:"not null" json:"kind"`

	Value    decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"`
	MinOrder decimal.Decimal `gorm:"type:decimal(10,2)" json:"minOrder"`
}
