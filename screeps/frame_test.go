package screeps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrameOpen(t *testing.T) {
	f, err := DecodeFrame("o")
	require.NoError(t, err)
	assert.Equal(t, FrameOpen, f.Kind)
}

func TestDecodeFrameHeartbeat(t *testing.T) {
	f, err := DecodeFrame("h")
	require.NoError(t, err)
	assert.Equal(t, FrameHeartbeat, f.Kind)
}

func TestDecodeFrameClose(t *testing.T) {
	f, err := DecodeFrame(`c[3000, "Go away!"]`)
	require.NoError(t, err)
	assert.Equal(t, FrameClose, f.Kind)
	assert.Equal(t, int64(3000), f.Code)
	assert.Equal(t, "Go away!", f.Reason)
}

func TestDecodeFrameSingleMessage(t *testing.T) {
	f, err := DecodeFrame(`m"time 12345"`)
	require.NoError(t, err)
	assert.Equal(t, FrameMessage, f.Kind)
	assert.Equal(t, "time 12345", f.Message)
	assert.Equal(t, []string{"time 12345"}, f.Messages())
}

func TestDecodeFrameBatch(t *testing.T) {
	f, err := DecodeFrame(`a["auth ok tok","time 99"]`)
	require.NoError(t, err)
	assert.Equal(t, FrameBatch, f.Kind)
	assert.Equal(t, []string{"auth ok tok", "time 99"}, f.Messages())
}

func TestDecodeFrameEmptyIsEmptyBatch(t *testing.T) {
	f, err := DecodeFrame("")
	require.NoError(t, err)
	assert.Equal(t, FrameBatch, f.Kind)
	assert.Empty(t, f.Messages())
}

func TestDecodeFrameErrors(t *testing.T) {
	cases := []string{
		"x",
		`m{not json`,
		`a["unterminated`,
		`c[3000]`,
		`c"not an array"`,
	}
	for _, raw := range cases {
		_, err := DecodeFrame(raw)
		require.Error(t, err, "raw=%q", raw)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, ErrorFrameSyntax, e.Code, "raw=%q", raw)
	}
}

func TestEncodeCommand(t *testing.T) {
	assert.Equal(t, `["subscribe room:E0N0"]`, EncodeCommand("subscribe room:E0N0"))
	assert.Equal(t, `["auth tok\"en"]`, EncodeCommand(`auth tok"en`))
}
