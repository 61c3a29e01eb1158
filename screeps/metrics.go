package screeps

import "sync/atomic"

// Metrics records session-level counters for monitoring and debugging.
// All methods are safe for concurrent use.
type Metrics struct {
	FramesReceived  int64 // inbound SockJS frames decoded
	FrameErrors     int64 // frames dropped for syntax errors
	Messages        int64 // inner messages processed
	UnknownMessages int64 // messages of an unrecognized kind
	ChannelUpdates  int64 // channel deltas merged
	StaleUpdates    int64 // updates for channels not subscribed
	RateLimitSkips  int64 // err@ skip notices across all channels
	CommandsSent    int64 // outbound commands emitted
}

func (m *Metrics) incFrame()        { atomic.AddInt64(&m.FramesReceived, 1) }
func (m *Metrics) incFrameError()   { atomic.AddInt64(&m.FrameErrors, 1) }
func (m *Metrics) incMessage()      { atomic.AddInt64(&m.Messages, 1) }
func (m *Metrics) incUnknown()      { atomic.AddInt64(&m.UnknownMessages, 1) }
func (m *Metrics) incUpdate()       { atomic.AddInt64(&m.ChannelUpdates, 1) }
func (m *Metrics) incStale()        { atomic.AddInt64(&m.StaleUpdates, 1) }
func (m *Metrics) incRateLimit()    { atomic.AddInt64(&m.RateLimitSkips, 1) }
func (m *Metrics) addCommands(n int) {
	atomic.AddInt64(&m.CommandsSent, int64(n))
}

// Snapshot returns a read-only copy of the counters.
func (m *Metrics) Snapshot() map[string]any {
	return map[string]any{
		"frames_received":  atomic.LoadInt64(&m.FramesReceived),
		"frame_errors":     atomic.LoadInt64(&m.FrameErrors),
		"messages":         atomic.LoadInt64(&m.Messages),
		"unknown_messages": atomic.LoadInt64(&m.UnknownMessages),
		"channel_updates":  atomic.LoadInt64(&m.ChannelUpdates),
		"stale_updates":    atomic.LoadInt64(&m.StaleUpdates),
		"rate_limit_skips": atomic.LoadInt64(&m.RateLimitSkips),
		"commands_sent":    atomic.LoadInt64(&m.CommandsSent),
	}
}
