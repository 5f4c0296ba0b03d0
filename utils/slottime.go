package utils

import "strings"

// Reservation time slots like "6:00PM - 6:30PM" contain spaces, which the
// frontend cannot put in a path segment. It sends underscores instead; the
// two functions below must stay exact inverses of each other.

func EncodeSlotTime(t string) string {
	return strings.ReplaceAll(t, " ", "_")
}

func DecodeSlotTime(t string) string {
	return strings.ReplaceAll(t, "_", " ")
}
