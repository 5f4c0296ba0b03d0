package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a cart line at placement time. Later menu
// price changes must not touch past orders.
type OrderItem struct {
	gorm.Model
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Qty       int             `json:"quantity"`
	Image     string          `json:"image"`

	OrderID uint `json:"-"`
}
