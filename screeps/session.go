package screeps

import "encoding/json"

// ProtocolVersion is the newest server protocol this package was written
// against. A differing announcement is advisory only.
const ProtocolVersion = 14

// Session is the protocol state machine for one socket connection: it
// tracks the connection lifecycle, the subscription bookkeeping, and one
// materialized document per subscribed stateful channel.
//
// The session performs no I/O. Feed it inbound frames in arrival order via
// HandleFrame and write whatever outbound commands it returns; the owning
// transport decides how. A Session is owned by exactly one goroutine at a
// time and is not safe for concurrent use; Metrics reads are the exception.
type Session struct {
	state      ConnectionState
	token      string
	serverTime uint64
	protocol   uint32
	pkg        uint32

	// ExpectedProtocol triggers an advisory mismatch event when the server
	// announces a different protocol version. Zero disables the check.
	ExpectedProtocol uint32

	desired      map[string]struct{}
	desiredOrder []string
	confirmed    map[string]struct{}
	documents    map[string]map[string]any
	rateLimits   map[string]uint64

	metrics Metrics
}

// NewSession creates a session that will authenticate with the given token.
func NewSession(token string) *Session {
	return &Session{
		token:            token,
		ExpectedProtocol: ProtocolVersion,
		desired:          make(map[string]struct{}),
		confirmed:        make(map[string]struct{}),
		documents:        make(map[string]map[string]any),
		rateLimits:       make(map[string]uint64),
	}
}

// State returns the current connection state.
func (s *Session) State() ConnectionState { return s.state }

// Token returns the current auth token. The server replaces it on every
// successful authentication.
func (s *Session) Token() string { return s.token }

// ServerTime returns the last time announcement received, zero if none.
func (s *Session) ServerTime() uint64 { return s.serverTime }

// Protocol returns the announced protocol version, zero if none.
func (s *Session) Protocol() uint32 { return s.protocol }

// Package returns the announced package version, zero if none.
func (s *Session) Package() uint32 { return s.pkg }

// Metrics returns the session's counters.
func (s *Session) Metrics() *Metrics { return &s.metrics }

// Document returns the materialized state for a channel. The returned map
// is owned by the session; treat it as read-only.
func (s *Session) Document(channel string) (map[string]any, bool) {
	doc, ok := s.documents[channel]
	return doc, ok
}

// RateLimitCount returns how many rate-limit skips a channel has received.
func (s *Session) RateLimitCount(channel string) uint64 {
	return s.rateLimits[channel]
}

// Connect transitions from Disconnected to Connecting. The caller invokes
// it right after establishing the transport.
func (s *Session) Connect() (Event, error) {
	if s.state != StateDisconnected {
		return nil, NewError(ErrorConnection, "connect in state "+s.state.String())
	}
	return s.transition(StateConnecting, nil), nil
}

// Reset tears the session down to Disconnected, dropping every channel
// document, confirmation, and rate-limit counter. The desired channel set
// survives: a later connect re-subscribes it after authentication.
func (s *Session) Reset() Event {
	s.confirmed = make(map[string]struct{})
	s.documents = make(map[string]map[string]any)
	s.rateLimits = make(map[string]uint64)
	if s.state == StateDisconnected {
		return nil
	}
	return s.transition(StateDisconnected, nil)
}

// Subscribe marks a channel as desired and returns the outbound commands to
// send now. Before authentication completes nothing is returned; the
// subscribe command is flushed by the auth reply. Idempotent: subscribing
// to an already-desired channel returns nothing.
func (s *Session) Subscribe(ch Channel) []string {
	name := ch.String()
	if _, ok := s.desired[name]; ok {
		return nil
	}
	s.desired[name] = struct{}{}
	s.desiredOrder = append(s.desiredOrder, name)
	if _, ok := s.documents[name]; !ok {
		s.documents[name] = make(map[string]any)
	}
	if s.state != StateAuthenticated {
		return nil
	}
	return s.commands("subscribe " + name)
}

// Unsubscribe removes a channel from the desired set, destroys its
// document, and returns the outbound commands to send now. Idempotent.
func (s *Session) Unsubscribe(ch Channel) []string {
	name := ch.String()
	if _, ok := s.desired[name]; !ok {
		return nil
	}
	delete(s.desired, name)
	for i, n := range s.desiredOrder {
		if n == name {
			s.desiredOrder = append(s.desiredOrder[:i], s.desiredOrder[i+1:]...)
			break
		}
	}
	delete(s.confirmed, name)
	delete(s.documents, name)
	delete(s.rateLimits, name)
	if s.state != StateAuthenticated {
		// The queued subscribe never went out, so nothing to undo.
		return nil
	}
	return s.commands("unsubscribe " + name)
}

// HandleFrame processes one raw inbound text frame and returns the events
// it produced and the outbound frames to write, both in order.
//
// Frame syntax errors are fatal to the frame only. An authentication
// rejection is the one session-fatal error: the session resets to
// Disconnected and the caller must re-initiate.
func (s *Session) HandleFrame(raw string) ([]Event, []string, error) {
	s.metrics.incFrame()

	frame, err := DecodeFrame(raw)
	if err != nil {
		s.metrics.incFrameError()
		return nil, nil, err
	}

	switch frame.Kind {
	case FrameOpen:
		if s.state != StateConnecting {
			return nil, nil, nil
		}
		ev := s.transition(StateAwaitingAuth, nil)
		return []Event{ev}, s.commands("auth " + s.token), nil

	case FrameHeartbeat:
		return nil, []string{EmptyFrame}, nil

	case FrameClose:
		events := []Event{CloseEvent{Code: frame.Code, Reason: frame.Reason}}
		if ev := s.Reset(); ev != nil {
			events = append(events, ev)
		}
		return events, nil, nil

	default:
		var events []Event
		var outbound []string
		for _, text := range frame.Messages() {
			evs, out, err := s.handleMessage(text)
			events = append(events, evs...)
			outbound = append(outbound, out...)
			if err != nil {
				return events, outbound, err
			}
		}
		return events, outbound, nil
	}
}

func (s *Session) handleMessage(text string) ([]Event, []string, error) {
	s.metrics.incMessage()
	msg := ParseMessage(text)

	switch msg.Kind {
	case MessageTime:
		s.serverTime = msg.Time
		return []Event{ServerTimeEvent{Time: msg.Time}}, nil, nil

	case MessageProtocol:
		s.protocol = msg.Protocol
		mismatch := s.ExpectedProtocol != 0 && msg.Protocol != s.ExpectedProtocol
		return []Event{ProtocolEvent{Protocol: msg.Protocol, Mismatch: mismatch}}, nil, nil

	case MessagePackage:
		s.pkg = msg.Package
		return []Event{PackageEvent{Package: msg.Package}}, nil, nil

	case MessageAuthOk:
		s.token = msg.Token
		events := []Event{AuthEvent{OK: true, Token: msg.Token}}
		var outbound []string
		if s.state != StateAuthenticated {
			events = append(events, s.transition(StateAuthenticated, nil))
			for _, name := range s.desiredOrder {
				outbound = append(outbound, s.commands("subscribe "+name)...)
			}
		}
		return events, outbound, nil

	case MessageAuthFailed:
		err := NewError(ErrorAuthenticationFailed, "server rejected auth token")
		events := []Event{AuthEvent{OK: false}}
		s.confirmed = make(map[string]struct{})
		s.documents = make(map[string]map[string]any)
		s.rateLimits = make(map[string]uint64)
		events = append(events, s.transition(StateDisconnected, err))
		return events, nil, err

	case MessageChannel:
		return s.handleChannelUpdate(msg), nil, nil

	default:
		s.metrics.incUnknown()
		return []Event{UnknownMessageEvent{Raw: msg.Raw}}, nil, nil
	}
}

func (s *Session) handleChannelUpdate(msg Message) []Event {
	name, rateLimited := SplitChannelName(msg.Channel)

	if rateLimited {
		s.metrics.incRateLimit()
		// Only track channels we still want, so stale err@ updates
		// cannot grow the map without bound.
		if _, ok := s.desired[name]; ok {
			s.rateLimits[name]++
		}
		return []Event{RateLimitEvent{Channel: name, Count: s.rateLimits[name]}}
	}

	if _, ok := s.desired[name]; !ok {
		// Stale: the registry already destroyed this channel's document.
		s.metrics.incStale()
		return nil
	}

	s.confirmed[name] = struct{}{}
	s.metrics.incUpdate()

	ev := ChannelEvent{Channel: name, Delta: msg.Payload}

	// Only object payloads participate in incremental merging; scalar and
	// array payloads (credits, branch names) pass through as-is.
	var delta map[string]any
	if err := json.Unmarshal(msg.Payload, &delta); err == nil {
		s.documents[name] = Merge(s.documents[name], delta)
		ev.Document = s.documents[name]
	}
	return []Event{ev}
}

func (s *Session) transition(to ConnectionState, cause error) Event {
	ev := StateEvent{OldState: s.state, NewState: to, Error: cause}
	s.state = to
	return ev
}

func (s *Session) commands(messages ...string) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = EncodeCommand(m)
	}
	s.metrics.addCommands(len(out))
	return out
}
