package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/pkg/types"
)

func TestOperatingWindow_Slots(t *testing.T) {
	w := OperatingWindow{Start: "13:00", End: "17:00"}

	slots := w.Slots()

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("13:00"), slots[0])
	assert.Equal(t, types.TimeString("16:45"), slots[15])
	assert.NotContains(t, slots, types.TimeString("17:00"))
}

func TestOperatingWindow_ClosedProducesNoSlots(t *testing.T) {
	w := ClosedWindow()

	assert.True(t, w.IsClosed())
	assert.Empty(t, w.Slots())
	assert.NoError(t, w.Validate())
}

func TestOperatingWindow_Validate(t *testing.T) {
	assert.NoError(t, OperatingWindow{Start: "14:00", End: "18:00"}.Validate())
	assert.ErrorIs(t, OperatingWindow{Start: "14:10", End: "18:00"}.Validate(), ErrMisalignedWindow)
	assert.Error(t, OperatingWindow{Start: "18:00", End: "14:00"}.Validate())
	assert.Error(t, OperatingWindow{Start: "2pm", End: "18:00"}.Validate())
}

func TestOperatingWindow_Contains(t *testing.T) {
	w := OperatingWindow{Start: "13:00", End: "17:00"}

	assert.True(t, w.Contains("13:00", "17:00"))
	assert.True(t, w.Contains("16:45", "17:00"))
	assert.False(t, w.Contains("12:45", "13:15"))
	assert.False(t, w.Contains("16:45", "17:15"))
	assert.False(t, w.Contains("14:00", "14:00"))
}

func TestOperatingWindow_IsAligned(t *testing.T) {
	w := OperatingWindow{Start: "13:00", End: "17:00"}

	assert.True(t, w.IsAligned("13:45"))
	assert.False(t, w.IsAligned("13:50"))
}
