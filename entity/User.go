package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	// ExternalID is the opaque identity from the sign-in provider
	// (Google sub or a generated guest id). We never verify it here.
	ExternalID string `gorm:"uniqueIndex;not null" json:"externalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`

	// Relations — preload only when needed
	Orders       []Order       `json:"-"`
	Reservations []Reservation `json:"-"`
	Cart         *Cart         `json:"-"`
}
