package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint       `gorm:"uniqueIndex" json:"userId"`
	Items  []CartItem `json:"items"`
}
