package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daybalancer/findatime/pkg/core/model"
)

var (
	mon9  = model.SlotID{Day: model.Mon, Hour: 9}
	mon10 = model.SlotID{Day: model.Mon, Hour: 10}
	mon11 = model.SlotID{Day: model.Mon, Hour: 11}
)

func TestPress_UnselectedArmsAdd(t *testing.T) {
	s := New()

	s.Press(mon9)

	assert.True(t, s.Dragging())
	assert.Equal(t, ModeAdd, s.CurrentMode())
	assert.True(t, s.Selected().Has(mon9))
}

func TestPress_SelectedArmsRemove(t *testing.T) {
	s := New()
	s.Press(mon9)
	s.Release()

	s.Press(mon9)

	assert.True(t, s.Dragging())
	assert.Equal(t, ModeRemove, s.CurrentMode())
	assert.False(t, s.Selected().Has(mon9))
}

func TestEnter_AppliesStickyMode(t *testing.T) {
	s := New()

	s.Press(mon9)
	s.Enter(mon10)
	s.Enter(mon11)
	s.Release()

	selected := s.Selected()
	assert.True(t, selected.Has(mon9))
	assert.True(t, selected.Has(mon10))
	assert.True(t, selected.Has(mon11))
}

func TestEnter_RemoveModeDeselects(t *testing.T) {
	s := New()
	s.Press(mon9)
	s.Enter(mon10)
	s.Enter(mon11)
	s.Release()

	// Start a remove gesture on a selected cell and drag over the others
	s.Press(mon10)
	s.Enter(mon11)
	s.Release()

	selected := s.Selected()
	assert.True(t, selected.Has(mon9))
	assert.False(t, selected.Has(mon10))
	assert.False(t, selected.Has(mon11))
}

func TestEnter_IdempotentReentry(t *testing.T) {
	s := New()

	s.Press(mon9)
	s.Enter(mon10)
	s.Enter(mon10)
	s.Enter(mon9)
	s.Release()

	assert.Len(t, s.Selected(), 2)
}

func TestEnter_IgnoredWhileIdle(t *testing.T) {
	s := New()

	s.Enter(mon9)

	assert.False(t, s.Dragging())
	assert.Empty(t, s.Selected())
}

func TestRelease_EndsGestureEvenOffGrid(t *testing.T) {
	s := New()
	s.Press(mon9)

	// Pointer released outside the grid area: no Enter between Press and
	// Release, the gesture just ends
	s.Release()

	assert.False(t, s.Dragging())
	assert.True(t, s.Selected().Has(mon9))

	// A later enter without a press changes nothing
	s.Enter(mon10)
	assert.False(t, s.Selected().Has(mon10))
}

func TestModeIsStickyAcrossMixedCells(t *testing.T) {
	s := New()
	s.Press(mon10)
	s.Release()

	// Add gesture starting on an unselected cell keeps adding even when
	// crossing the already-selected one
	s.Press(mon9)
	s.Enter(mon10)
	s.Enter(mon11)
	s.Release()

	assert.Len(t, s.Selected(), 3)
}

func TestReset_ClearsSelectionAndState(t *testing.T) {
	s := New()
	s.Press(mon9)
	s.Enter(mon10)

	s.Reset()

	assert.False(t, s.Dragging())
	assert.Empty(t, s.Selected())
}

func TestSelected_ReturnsCopy(t *testing.T) {
	s := New()
	s.Press(mon9)
	s.Release()

	selected := s.Selected()
	selected.Add(mon10)

	assert.False(t, s.Selected().Has(mon10))
}
