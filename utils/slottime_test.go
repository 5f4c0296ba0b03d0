package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotTimeRoundTrip(t *testing.T) {
	for _, slot := range []string{
		"6:00PM - 6:30PM",
		"11:30AM - 12:00PM",
		"nospaces",
		"",
	} {
		encoded := EncodeSlotTime(slot)
		assert.NotContains(t, encoded, " ")
		assert.Equal(t, slot, DecodeSlotTime(encoded))
	}
}

func TestDecodeSlotTime(t *testing.T) {
	assert.Equal(t, "6:00PM - 6:30PM", DecodeSlotTime("6:00PM_-_6:30PM"))
}
