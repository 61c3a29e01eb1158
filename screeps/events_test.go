package screeps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsoleUpdateErrorVariant(t *testing.T) {
	update, err := ParseConsoleUpdate([]byte(`{"error":"TypeError: x is not a function"}`))
	require.NoError(t, err)
	assert.Empty(t, update.Log)
	assert.Equal(t, "TypeError: x is not a function", update.Error)
}

func TestParseMapViewUpdateEmpty(t *testing.T) {
	update, err := ParseMapViewUpdate([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, update.Walls)
	assert.Empty(t, update.UserObjects)
}
