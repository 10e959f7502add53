package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_CloneIsIndependent(t *testing.T) {
	original := Session{
		Code:  "oak-river-247",
		Title: "Team sync",
		Participants: []Participant{
			{ID: "p1", Name: "Amy", Slots: []SlotID{{Day: Mon, Hour: 9}}, ColorIndex: 0},
		},
	}

	clone := original.Clone()
	clone.Participants[0].Name = "Changed"
	clone.Participants[0].Slots[0] = SlotID{Day: Fri, Hour: 18}
	clone.Participants = append(clone.Participants, Participant{Name: "Bo"})

	assert.Equal(t, "Amy", original.Participants[0].Name)
	assert.Equal(t, SlotID{Day: Mon, Hour: 9}, original.Participants[0].Slots[0])
	assert.Len(t, original.Participants, 1)
}

func TestSession_JSONUsesSlotKeys(t *testing.T) {
	session := Session{
		Code:  "moss-dawn-512",
		Title: "Coffee chat",
		Participants: []Participant{
			{ID: "p1", Name: "Amy", Slots: []SlotID{{Day: Wed, Hour: 14}}, ColorIndex: 3},
		},
	}

	data, err := json.Marshal(session)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Wed-14"`)
	assert.Contains(t, string(data), `"colorIndex":3`)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, session, decoded)
}

func TestParticipant_SlotSet(t *testing.T) {
	p := Participant{Slots: []SlotID{{Day: Mon, Hour: 9}, {Day: Mon, Hour: 10}}}
	set := p.SlotSet()

	assert.True(t, set.Has(SlotID{Day: Mon, Hour: 9}))
	assert.True(t, set.Has(SlotID{Day: Mon, Hour: 10}))
	assert.False(t, set.Has(SlotID{Day: Mon, Hour: 11}))
}
