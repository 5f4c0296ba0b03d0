package entity

import (
	"gorm.io/gorm"
)

type MenuType struct {
	gorm.Model
	TypeName string `gorm:"uniqueIndex;not null" json:"typeName"`
	Menus    []Menu `json:"-"`
}
