package screeps

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketURL(t *testing.T) {
	u, err := WebsocketURL("https://screeps.com/api/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "wss://screeps.com/socket/"), "url=%q", u)
	assert.True(t, strings.HasSuffix(u, "/websocket"), "url=%q", u)

	// Path segments: /socket/{server}/{session}/websocket
	parts := strings.Split(strings.TrimPrefix(u, "wss://screeps.com/"), "/")
	require.Len(t, parts, 4)
	assert.Len(t, parts[1], 3)
	assert.Len(t, parts[2], 8)

	u2, err := WebsocketURL("http://localhost:21025/api/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u2, "ws://localhost:21025/socket/"), "url=%q", u2)
}

func TestWebsocketURLRejectsBadSchemes(t *testing.T) {
	_, err := WebsocketURL("ftp://screeps.com/api/")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrorInvalidConfig, e.Code)
}

func TestClientSubscribeQueuesBeforeConnect(t *testing.T) {
	c := NewClient(DefaultConfig())
	// Nothing is on the wire yet, so this only records intent.
	require.NoError(t, c.Subscribe(testCtx(), Raw("room:E4S61")))
	assert.Equal(t, StateDisconnected, c.State())
}

func TestClientConnectEmptyURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIURL = ""
	c := NewClient(cfg)
	err := c.Connect(testCtx())
	require.Error(t, err)
}

func TestClientDocumentCopyIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Token = "start-token"
	c := NewClient(cfg)
	require.NoError(t, c.Subscribe(testCtx(), Raw("room:E4S61")))

	c.mu.Lock()
	authenticate(t, c.session)
	_, _, err := c.session.HandleFrame(`m"[\"room:E4S61\",{\"objects\":{\"c1\":{\"body\":[\"move\",\"work\"]}}}]"`)
	c.mu.Unlock()
	require.NoError(t, err)

	first, ok := c.Document(Raw("room:E4S61"))
	require.True(t, ok)
	body := first["objects"].(map[string]any)["c1"].(map[string]any)["body"].([]any)
	body[0] = "tough"

	second, ok := c.Document(Raw("room:E4S61"))
	require.True(t, ok)
	bodyAgain := second["objects"].(map[string]any)["c1"].(map[string]any)["body"].([]any)
	assert.Equal(t, "move", bodyAgain[0])
}

// testCtx returns an already-cancelled context for unit tests.
func testCtx() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
