package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_StripsSeconds(t *testing.T) {
	ts, err := NewTimeStringFromString("13:45:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:45"), ts)

	ts, err = NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, in := range []string{"", "25:00", "12:60", "noon", "12", "12:00:61", "1:2:3:4"} {
		_, err := NewTimeStringFromString(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", in)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := MustTimeString("13:45").AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), ts)

	_, err = MustTimeString("23:50").AddMinutes(15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	a := MustTimeString("13:00")
	b := TimeString("13:15")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.True(t, TimeString("13:00:00").Equal(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:15:00")))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan("08:30"))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("07:15").Validate())
	assert.Error(t, TimeString("7:15").Validate())
	assert.Error(t, TimeString("07:15:00").Validate())
}
