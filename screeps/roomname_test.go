package screeps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomName(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"E0N0", 0, 0},
		{"W0N0", -1, 0},
		{"E0S0", 0, -1},
		{"W0S0", -1, -1},
		{"E4S61", 4, -62},
		{"W10N42", -11, 42},
		{"e12s5", 12, -6},
	}
	for _, tc := range cases {
		n, err := ParseRoomName(tc.name)
		require.NoError(t, err, "name=%q", tc.name)
		assert.Equal(t, RoomName{X: tc.x, Y: tc.y}, n, "name=%q", tc.name)
	}
}

func TestParseRoomNameRoundTrip(t *testing.T) {
	for _, name := range []string{"E0N0", "W0S0", "E128N77", "W63S63"} {
		n, err := ParseRoomName(name)
		require.NoError(t, err)
		assert.Equal(t, name, n.String())
	}
}

func TestParseRoomNameErrors(t *testing.T) {
	for _, name := range []string{"", "E0", "N0E0", "EN", "E-1N0", "E0N-1", "Q5N5", "E5X5"} {
		_, err := ParseRoomName(name)
		require.Error(t, err, "name=%q", name)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, ErrorDecode, e.Code)
	}
}

func TestRoomNameArithmetic(t *testing.T) {
	n, err := ParseRoomName("E0N0")
	require.NoError(t, err)

	assert.Equal(t, "W0S0", n.Add(-1, -1).String())
	assert.Equal(t, "E5N9", n.Add(5, 9).String())

	other, err := ParseRoomName("W5N3")
	require.NoError(t, err)
	dx, dy := n.Sub(other)
	assert.Equal(t, 6, dx)
	assert.Equal(t, -3, dy)
}
