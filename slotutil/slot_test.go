package slotutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotDeterministic(t *testing.T) {
	assert.Equal(t, Slot("foo"), Slot("foo"))
}

func TestSlotKnownVectors(t *testing.T) {
	assert.Equal(t, 12182, Slot("foo"))
	assert.Equal(t, 5474, Slot("user1000"))
}

func TestSlotHashTagRouting(t *testing.T) {
	want := Slot("user1000")
	assert.Equal(t, want, Slot("{user1000}.following"))
	assert.Equal(t, want, Slot("{user1000}.followers"))
}

func TestSlotEmptyOrMalformedBraces(t *testing.T) {
	// empty braces: hash the whole key, not the empty string between them
	assert.Equal(t, int(CRC16([]byte("{}foo"))%NumSlots), Slot("{}foo"))
	assert.NotEqual(t, Slot("foo"), Slot("{}foo"))

	// unmatched opening brace: hash the whole key
	assert.Equal(t, int(CRC16([]byte("foo{bar"))%NumSlots), Slot("foo{bar"))
}

func TestSlotRange(t *testing.T) {
	for _, k := range []string{"a", "b", "c", "some-longer-key-name", ""} {
		s := Slot(k)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, NumSlots)
	}
}
