package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderID string `gorm:"uniqueIndex;not null" json:"orderId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Method  string `json:"method"` // pickup | delivery
	Address string `json:"address"`

	PickupTime    string `json:"pickupTime"`
	PaymentMethod string `json:"paymentMethod"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	TotalCost   decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalCost"`

	// Closed moves the order out of the active view. One-way.
	Closed bool `json:"closed"`

	UserID uint `json:"-"`
	User   User `json:"-"`

	Items []OrderItem `json:"items"`
}
