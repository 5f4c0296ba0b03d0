package entity

import (
	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	ReservationID string `gorm:"uniqueIndex;not null" json:"reservationId"`
	TableNo       int    `gorm:"column:table_no" json:"table"`
	Name          string `json:"name"`
	People        int    `json:"people"`
	Date          string `json:"date"`
	Time          string `json:"time"` // stored with spaces, e.g. "6:00PM - 6:30PM"
	Branch        string `json:"branch"`

	// Cancelled frees the slot. One-way; record is never deleted.
	Cancelled bool `json:"cancelled"`

	UserID uint `json:"-"`
	User   User `json:"-"`
}
