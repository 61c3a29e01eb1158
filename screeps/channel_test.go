package screeps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNames(t *testing.T) {
	id := "57c7df771d90a0c561977377"
	room := RoomName{X: 4, Y: -62}

	cases := []struct {
		ch   Channel
		want string
	}{
		{ServerMessages(), "server-message"},
		{UserCPU(id), "user:" + id + "/cpu"},
		{UserConsole(id), "user:" + id + "/console"},
		{UserMessages(id), "user:" + id + "/newMessage"},
		{UserConversation(id, "other"), "user:" + id + "/message:other"},
		{UserCredits(id), "user:" + id + "/money"},
		{UserMemoryPath(id, "rooms.E4S61"), "user:" + id + "/memory/rooms.E4S61"},
		{UserActiveBranch(id), "user:" + id + "/set-active-branch"},
		{RoomMapView("shard0", room), "roomMap2:shard0/E4S61"},
		{RoomMapView("", room), "roomMap2:E4S61"},
		{RoomDetail("shard0", room), "room:shard0/E4S61"},
		{RoomDetail("", room), "room:E4S61"},
		{Raw("custom:thing"), "custom:thing"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ch.String())
	}
}

func TestSplitChannelName(t *testing.T) {
	name, limited := SplitChannelName("err@room:shard0/E4S61")
	assert.True(t, limited)
	assert.Equal(t, "room:shard0/E4S61", name)

	name, limited = SplitChannelName("room:shard0/E4S61")
	assert.False(t, limited)
	assert.Equal(t, "room:shard0/E4S61", name)
}

func TestSplitRoomChannel(t *testing.T) {
	shard, room, ok := splitRoomChannel("room:shard3/W10N42", roomDetailPrefix)
	require.True(t, ok)
	assert.Equal(t, "shard3", shard)
	assert.Equal(t, "W10N42", room)

	shard, room, ok = splitRoomChannel("roomMap2:E0N0", roomMapPrefix)
	require.True(t, ok)
	assert.Empty(t, shard)
	assert.Equal(t, "E0N0", room)

	_, _, ok = splitRoomChannel("user:abc/cpu", roomDetailPrefix)
	assert.False(t, ok)
}

func TestSplitUserChannel(t *testing.T) {
	id, sub, ok := splitUserChannel("user:abc123/console")
	require.True(t, ok)
	assert.Equal(t, "abc123", id)
	assert.Equal(t, "console", sub)

	_, _, ok = splitUserChannel("room:E0N0")
	assert.False(t, ok)
}
