package screeps

import "encoding/json"

// Event is one observable outcome of processing an inbound frame. The
// session returns events in the exact order they occurred; the dispatcher
// fans them out to registered callbacks.
type Event interface {
	isEvent()
}

// ServerTimeEvent reports the server's time announcement.
type ServerTimeEvent struct {
	Time uint64
}

// ProtocolEvent reports the server's protocol version announcement.
// Mismatch is advisory only and never blocks the session.
type ProtocolEvent struct {
	Protocol uint32
	Mismatch bool
}

// PackageEvent reports the server's package version announcement.
type PackageEvent struct {
	Package uint32
}

// AuthEvent reports the outcome of authentication. On success Token holds
// the replacement token the server issued.
type AuthEvent struct {
	OK    bool
	Token string
}

// RateLimitEvent reports a tick on which the server skipped a channel's
// update. Count is the total number of skips observed for the channel.
type RateLimitEvent struct {
	Channel string
	Count   uint64
}

// ChannelEvent reports a merged update on a subscribed channel. Delta is the
// raw payload as received; Document is the materialized state after the
// merge, owned by the session; treat it as read-only.
type ChannelEvent struct {
	Channel  string
	Delta    json.RawMessage
	Document map[string]any
}

// CloseEvent reports a server-initiated SockJS close.
type CloseEvent struct {
	Code   int64
	Reason string
}

// UnknownMessageEvent reports a message kind this package does not
// recognize. Dropped after reporting; never fatal.
type UnknownMessageEvent struct {
	Raw string
}

func (ServerTimeEvent) isEvent()     {}
func (ProtocolEvent) isEvent()       {}
func (PackageEvent) isEvent()        {}
func (AuthEvent) isEvent()           {}
func (RateLimitEvent) isEvent()      {}
func (ChannelEvent) isEvent()        {}
func (CloseEvent) isEvent()          {}
func (UnknownMessageEvent) isEvent() {}
func (StateEvent) isEvent()          {}

// ConsoleUpdate is one tick's console output for a subscribed user, or a
// script error if Error is non-empty.
type ConsoleUpdate struct {
	// Log holds everything the user's script logged last tick.
	Log []string
	// Results holds outputs of console commands executed last tick.
	Results []string
	// Error, when non-empty, is a script error. Errors may arrive several
	// times per tick and arrive alone, without log output.
	Error string
}

type consoleUpdateWire struct {
	Messages *struct {
		Log     []string `json:"log"`
		Results []string `json:"results"`
	} `json:"messages"`
	Error string `json:"error"`
}

// ParseConsoleUpdate decodes a `user:{id}/console` channel payload.
func ParseConsoleUpdate(payload []byte) (ConsoleUpdate, error) {
	var wire consoleUpdateWire
	if err := json.Unmarshal(payload, &wire); err != nil {
		return ConsoleUpdate{}, WrapError(ErrorSerialization, "malformed console update", err)
	}
	update := ConsoleUpdate{Error: wire.Error}
	if wire.Messages != nil {
		update.Log = wire.Messages.Log
		update.Results = wire.Messages.Results
	}
	return update, nil
}

// CPUUpdate is a user's end-of-tick CPU and memory usage. Memory is the
// byte size of the stringified in-game memory, not RAM.
type CPUUpdate struct {
	CPU    uint32 `json:"cpu"`
	Memory uint32 `json:"memory"`
}

// ParseCPUUpdate decodes a `user:{id}/cpu` channel payload.
func ParseCPUUpdate(payload []byte) (CPUUpdate, error) {
	var update CPUUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return CPUUpdate{}, WrapError(ErrorSerialization, "malformed cpu update", err)
	}
	return update, nil
}

// MapViewUpdate is one tick's map-overview contents of a room: positions of
// each nondescript kind of object, plus per-user object positions.
type MapViewUpdate struct {
	Walls       [][2]int
	Roads       [][2]int
	PowerBanks  [][2]int
	Portals     [][2]int
	Sources     [][2]int
	Minerals    [][2]int
	Controllers [][2]int
	KeeperLairs [][2]int
	// UserObjects maps user id to positions of that user's objects. The
	// server does not say what kind of object each position holds.
	UserObjects map[string][][2]int
}

// ParseMapViewUpdate decodes a `roomMap2:` channel payload. The eight known
// short keys are picked out; every remaining key is a user id.
func ParseMapViewUpdate(payload []byte) (MapViewUpdate, error) {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wire); err != nil {
		return MapViewUpdate{}, WrapError(ErrorSerialization, "malformed map view update", err)
	}

	var update MapViewUpdate
	known := map[string]*[][2]int{
		"w":  &update.Walls,
		"r":  &update.Roads,
		"pb": &update.PowerBanks,
		"p":  &update.Portals,
		"s":  &update.Sources,
		"m":  &update.Minerals,
		"c":  &update.Controllers,
		"k":  &update.KeeperLairs,
	}
	for key, raw := range wire {
		var positions [][2]int
		if err := json.Unmarshal(raw, &positions); err != nil {
			return MapViewUpdate{}, WrapError(ErrorSerialization, "malformed map view entry "+key, err)
		}
		if dest, ok := known[key]; ok {
			*dest = positions
			continue
		}
		if update.UserObjects == nil {
			update.UserObjects = make(map[string][][2]int)
		}
		update.UserObjects[key] = positions
	}
	return update, nil
}
