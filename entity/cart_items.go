package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a line in a user's cart, keyed by item name within the cart.
// Qty dropping to 0 removes the row.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:uq_cart_item_name" json:"-"`

	Name      string          `gorm:"uniqueIndex:uq_cart_item_name;not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Qty       int             `json:"quantity"`
	Image     string          `json:"image"`
}
