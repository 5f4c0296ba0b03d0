package entity

import (
	"gorm.io/gorm"
)

type Branch struct {
	gorm.Model
	Code    string `gorm:"uniqueIndex;not null" json:"code"` // dreamwood | heavengarden
	Name    string `json:"name"`
	Address string `json:"address"`
	// Tables is the number of bookable tables in the floor blueprint,
	// numbered 1..Tables.
	Tables int `json:"tables"`
}
