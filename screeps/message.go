package screeps

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MessageKind discriminates parsed session messages.
type MessageKind int

const (
	// MessageUnknown is any message in a format this package does not
	// recognize. Unknown kinds are reported and dropped, never fatal:
	// new server message kinds must not break established connections.
	MessageUnknown MessageKind = iota
	// MessageTime is the server's `time <integer>` announcement.
	MessageTime
	// MessageProtocol is the server's `protocol <integer>` announcement.
	MessageProtocol
	// MessagePackage is the server's `package <integer>` announcement.
	MessagePackage
	// MessageAuthOk is `auth ok <token>`, carrying a replacement token.
	MessageAuthOk
	// MessageAuthFailed is `auth failed`.
	MessageAuthFailed
	// MessageChannel is a `[name, payload]` update on a subscribed channel.
	MessageChannel
)

// String returns the string representation of a MessageKind.
func (k MessageKind) String() string {
	switch k {
	case MessageTime:
		return "time"
	case MessageProtocol:
		return "protocol"
	case MessagePackage:
		return "package"
	case MessageAuthOk:
		return "auth_ok"
	case MessageAuthFailed:
		return "auth_failed"
	case MessageChannel:
		return "channel"
	default:
		return "unknown"
	}
}

// Message is one parsed inner session message.
type Message struct {
	Kind MessageKind

	// Time is set for MessageTime.
	Time uint64
	// Protocol is set for MessageProtocol, Package for MessagePackage.
	Protocol uint32
	Package  uint32
	// Token is the replacement auth token for MessageAuthOk.
	Token string

	// Channel and Payload are set for MessageChannel. Payload is the raw
	// JSON delta; merging it into channel state is the session's job.
	Channel string
	Payload json.RawMessage

	// Raw is the original text, retained for MessageUnknown.
	Raw string
}

const (
	authPrefix     = "auth "
	timePrefix     = "time "
	protocolPrefix = "protocol "
	packagePrefix  = "package "
	authOkPrefix   = "ok "
	authFailed     = "failed"
)

// ParseMessage parses a frame's inner string payload.
//
// A 2-element JSON array `[name, payload]` dispatches as a channel update;
// anything else splits on the first space into keyword and remainder.
// Unmatched keywords and malformed remainders yield MessageUnknown rather
// than an error.
func ParseMessage(text string) Message {
	if strings.HasPrefix(text, "[") {
		var parts []json.RawMessage
		if err := json.Unmarshal([]byte(text), &parts); err == nil && len(parts) == 2 {
			var channel string
			if err := json.Unmarshal(parts[0], &channel); err == nil {
				return Message{Kind: MessageChannel, Channel: channel, Payload: parts[1]}
			}
		}
		return Message{Kind: MessageUnknown, Raw: text}
	}

	switch {
	case strings.HasPrefix(text, authPrefix):
		rest := text[len(authPrefix):]
		if strings.HasPrefix(rest, authOkPrefix) {
			return Message{Kind: MessageAuthOk, Token: rest[len(authOkPrefix):]}
		}
		if rest == authFailed {
			return Message{Kind: MessageAuthFailed}
		}
	case strings.HasPrefix(text, timePrefix):
		if v, err := strconv.ParseUint(text[len(timePrefix):], 10, 64); err == nil {
			return Message{Kind: MessageTime, Time: v}
		}
	case strings.HasPrefix(text, protocolPrefix):
		if v, err := strconv.ParseUint(text[len(protocolPrefix):], 10, 32); err == nil {
			return Message{Kind: MessageProtocol, Protocol: uint32(v)}
		}
	case strings.HasPrefix(text, packagePrefix):
		if v, err := strconv.ParseUint(text[len(packagePrefix):], 10, 32); err == nil {
			return Message{Kind: MessagePackage, Package: uint32(v)}
		}
	}

	return Message{Kind: MessageUnknown, Raw: text}
}
