package screeps

import "strings"

// Channel identifies one subscribable stream of server state.
//
// The zero value is not a valid channel; use the constructors, or Raw for a
// channel whose name is already known in wire format.
type Channel struct {
	name string
}

// ServerMessages subscribes to server-wide announcement messages.
func ServerMessages() Channel {
	return Channel{name: "server-message"}
}

// UserCPU subscribes to a user's per-tick CPU and memory usage.
func UserCPU(userID string) Channel {
	return Channel{name: "user:" + userID + "/cpu"}
}

// UserConsole subscribes to a user's console output, sent once per tick.
func UserConsole(userID string) Channel {
	return Channel{name: "user:" + userID + "/console"}
}

// UserMessages subscribes to a user's new-message notifications.
func UserMessages(userID string) Channel {
	return Channel{name: "user:" + userID + "/newMessage"}
}

// UserConversation subscribes to new messages in one specific conversation.
func UserConversation(userID, targetUserID string) Channel {
	return Channel{name: "user:" + userID + "/message:" + targetUserID}
}

// UserCredits subscribes to changes of a user's credit balance.
func UserCredits(userID string) Channel {
	return Channel{name: "user:" + userID + "/money"}
}

// UserMemoryPath subscribes to changes of one memory path, `.`-separated.
func UserMemoryPath(userID, path string) Channel {
	return Channel{name: "user:" + userID + "/memory/" + path}
}

// UserActiveBranch subscribes to changes of a user's active code branch.
func UserActiveBranch(userID string) Channel {
	return Channel{name: "user:" + userID + "/set-active-branch"}
}

// RoomMapView subscribes to per-tick map-overview updates of a room.
//
// Pass an empty shard on non-sharded servers. A shard mismatch makes the
// subscribe fail silently on the server side.
func RoomMapView(shard string, room RoomName) Channel {
	if shard == "" {
		return Channel{name: "roomMap2:" + room.String()}
	}
	return Channel{name: "roomMap2:" + shard + "/" + room.String()}
}

// RoomDetail subscribes to per-tick detailed updates of a room's contents.
//
// The server limits this to 2 active rooms per account; extra subscriptions
// receive rate-limit skips on "off" ticks.
func RoomDetail(shard string, room RoomName) Channel {
	if shard == "" {
		return Channel{name: "room:" + room.String()}
	}
	return Channel{name: "room:" + shard + "/" + room.String()}
}

// Raw wraps an exact wire-format channel name.
func Raw(name string) Channel {
	return Channel{name: name}
}

// String returns the exact wire name of the channel.
func (c Channel) String() string {
	return c.name
}

const (
	rateLimitPrefix  = "err@"
	roomDetailPrefix = "room:"
	roomMapPrefix    = "roomMap2:"
	userPrefix       = "user:"
)

// SplitChannelName strips the `err@` rate-limit marker from an inbound
// channel name. A marked name means the server skipped this tick's update
// for the channel; it is a signal, not an error.
func SplitChannelName(name string) (channel string, rateLimited bool) {
	if strings.HasPrefix(name, rateLimitPrefix) {
		return name[len(rateLimitPrefix):], true
	}
	return name, false
}

// splitUserChannel splits `user:{id}/{sub}` names into their parts.
func splitUserChannel(name string) (userID, sub string, ok bool) {
	if !strings.HasPrefix(name, userPrefix) {
		return "", "", false
	}
	userID, sub, ok = strings.Cut(name[len(userPrefix):], "/")
	return userID, sub, ok
}

// splitRoomChannel splits `prefix{shard}/{room}` or `prefix{room}` names.
func splitRoomChannel(name, prefix string) (shard, room string, ok bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", "", false
	}
	rest := name[len(prefix):]
	if before, after, found := strings.Cut(rest, "/"); found {
		return before, after, true
	}
	return "", rest, true
}
