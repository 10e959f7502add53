package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_CoversFullGrid(t *testing.T) {
	slots := Slots()

	// 7 days x 14 hours
	assert.Len(t, slots, 98)

	// Day-outer, hour-inner order
	assert.Equal(t, SlotID{Day: Mon, Hour: 7}, slots[0])
	assert.Equal(t, SlotID{Day: Mon, Hour: 20}, slots[13])
	assert.Equal(t, SlotID{Day: Tue, Hour: 7}, slots[14])
	assert.Equal(t, SlotID{Day: Sun, Hour: 20}, slots[len(slots)-1])
}

func TestSlotKey_InjectiveOverGrid(t *testing.T) {
	seen := make(map[string]SlotID)
	for _, slot := range Slots() {
		key := slot.Key()
		if prev, dup := seen[key]; dup {
			t.Fatalf("key %q produced by both %v and %v", key, prev, slot)
		}
		seen[key] = slot
	}
	assert.Len(t, seen, 98)
}

func TestParseSlot_RoundTrip(t *testing.T) {
	for _, slot := range Slots() {
		parsed, err := ParseSlot(slot.Key())
		require.NoError(t, err)
		assert.Equal(t, slot, parsed)
	}
}

func TestParseSlot_Invalid(t *testing.T) {
	cases := []string{
		"",
		"Mon",
		"Mon-",
		"Mon-abc",
		"Monday-9",
		"Mon-6",  // before grid start
		"Mon-21", // after grid end
		"Xyz-9",
	}
	for _, input := range cases {
		_, err := ParseSlot(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestSlotID_TextMarshaling(t *testing.T) {
	slot := SlotID{Day: Wed, Hour: 14}

	text, err := slot.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Wed-14", string(text))

	var decoded SlotID
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, slot, decoded)
}

func TestSlotID_MarshalInvalid(t *testing.T) {
	_, err := SlotID{Day: "Nope", Hour: 9}.MarshalText()
	assert.Error(t, err)
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "7 am", FormatHour(7))
	assert.Equal(t, "11 am", FormatHour(11))
	assert.Equal(t, "12 pm", FormatHour(12))
	assert.Equal(t, "1 pm", FormatHour(13))
	assert.Equal(t, "8 pm", FormatHour(20))
}

func TestSlotSet_AddRemoveHas(t *testing.T) {
	set := NewSlotSet()
	slot := SlotID{Day: Mon, Hour: 9}

	assert.False(t, set.Has(slot))

	set.Add(slot)
	assert.True(t, set.Has(slot))

	// Adding again is a no-op
	set.Add(slot)
	assert.Len(t, set, 1)

	set.Remove(slot)
	assert.False(t, set.Has(slot))

	// Removing an absent slot is a no-op
	set.Remove(slot)
	assert.Empty(t, set)
}

func TestSlotSet_SortedIsGridOrder(t *testing.T) {
	set := NewSlotSet(
		SlotID{Day: Sun, Hour: 20},
		SlotID{Day: Mon, Hour: 9},
		SlotID{Day: Mon, Hour: 7},
		SlotID{Day: Wed, Hour: 14},
	)

	assert.Equal(t, []SlotID{
		{Day: Mon, Hour: 7},
		{Day: Mon, Hour: 9},
		{Day: Wed, Hour: 14},
		{Day: Sun, Hour: 20},
	}, set.Sorted())
}
