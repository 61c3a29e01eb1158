package screeps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMessageKeywords(t *testing.T) {
	m := ParseMessage("time 1516383999568")
	assert.Equal(t, MessageTime, m.Kind)
	assert.Equal(t, uint64(1516383999568), m.Time)

	m = ParseMessage("protocol 14")
	assert.Equal(t, MessageProtocol, m.Kind)
	assert.Equal(t, uint32(14), m.Protocol)

	m = ParseMessage("package 160")
	assert.Equal(t, MessagePackage, m.Kind)
	assert.Equal(t, uint32(160), m.Package)
}

func TestParseMessageAuth(t *testing.T) {
	m := ParseMessage("auth ok abc123token")
	assert.Equal(t, MessageAuthOk, m.Kind)
	assert.Equal(t, "abc123token", m.Token)

	m = ParseMessage("auth failed")
	assert.Equal(t, MessageAuthFailed, m.Kind)
}

func TestParseMessageChannel(t *testing.T) {
	m := ParseMessage(`["room:shard0/E4S61",{"gameTime":123}]`)
	assert.Equal(t, MessageChannel, m.Kind)
	assert.Equal(t, "room:shard0/E4S61", m.Channel)
	assert.JSONEq(t, `{"gameTime":123}`, string(m.Payload))
}

func TestParseMessageChannelNonObjectPayload(t *testing.T) {
	m := ParseMessage(`["user:57c7df771d90a0c561977377/money",10500]`)
	assert.Equal(t, MessageChannel, m.Kind)
	assert.Equal(t, "10500", string(m.Payload))
}

func TestParseMessageUnknownKinds(t *testing.T) {
	cases := []string{
		"gz compressed-future-thing",
		"time notanumber",
		"auth sideways",
		`["only one element"]`,
		`["three","elements","here"]`,
		`[42,{"payload":1}]`,
		`[truncated`,
	}
	for _, text := range cases {
		m := ParseMessage(text)
		assert.Equal(t, MessageUnknown, m.Kind, "text=%q", text)
		assert.Equal(t, text, m.Raw, "text=%q", text)
	}
}
