package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string          `gorm:"uniqueIndex;not null" json:"menuName"`
	Detail   string          `json:"detail"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Picture  string          `json:"picture"`

	MenuTypeID uint     `json:"menuTypeId"`
	MenuType   MenuType `json:"-"` // preload เฉพาะตอน detail
}
