package screeps

import (
	"encoding/json"
	"fmt"
)

// FrameKind discriminates the SockJS envelope variants.
type FrameKind int

const (
	// FrameOpen is the `o` frame sent once when the SockJS session opens.
	FrameOpen FrameKind = iota
	// FrameHeartbeat is the `h` keepalive frame.
	FrameHeartbeat
	// FrameClose is the `c[code, reason]` frame.
	FrameClose
	// FrameMessage is the `m"..."` frame carrying one inner message.
	FrameMessage
	// FrameBatch is the `a[...]` frame carrying several inner messages.
	FrameBatch
)

// String returns the string representation of a FrameKind.
func (k FrameKind) String() string {
	switch k {
	case FrameOpen:
		return "open"
	case FrameHeartbeat:
		return "heartbeat"
	case FrameClose:
		return "close"
	case FrameMessage:
		return "message"
	case FrameBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// Frame is one decoded SockJS envelope.
//
// Message is set for FrameMessage, Batch for FrameBatch, and Code/Reason for
// FrameClose. Batch entries must be processed in order: later inner messages
// may depend on state seeded by earlier ones in the same frame.
type Frame struct {
	Kind    FrameKind
	Message string
	Batch   []string
	Code    int64
	Reason  string
}

// EmptyFrame is the outbound keepalive the server expects in reply to
// heartbeats.
const EmptyFrame = "[]"

// DecodeFrame parses one raw inbound text frame into a Frame.
//
// An empty input decodes as an empty batch. Unrecognized prefixes and
// malformed JSON bodies return an ErrorFrameSyntax error; such errors are
// fatal to the frame only, never to the session.
func DecodeFrame(raw string) (Frame, error) {
	if raw == "" {
		return Frame{Kind: FrameBatch}, nil
	}

	rest := raw[1:]
	switch raw[0] {
	case 'o':
		return Frame{Kind: FrameOpen}, nil
	case 'h':
		return Frame{Kind: FrameHeartbeat}, nil
	case 'c':
		var body []json.RawMessage
		if err := json.Unmarshal([]byte(rest), &body); err != nil || len(body) != 2 {
			return Frame{}, WrapError(ErrorFrameSyntax, "malformed close frame body", err)
		}
		f := Frame{Kind: FrameClose}
		if err := json.Unmarshal(body[0], &f.Code); err != nil {
			return Frame{}, WrapError(ErrorFrameSyntax, "malformed close frame code", err)
		}
		if err := json.Unmarshal(body[1], &f.Reason); err != nil {
			return Frame{}, WrapError(ErrorFrameSyntax, "malformed close frame reason", err)
		}
		return f, nil
	case 'm':
		// The body contains JSON string escapes, so it has to go through a
		// real JSON decode rather than a trim.
		var msg string
		if err := json.Unmarshal([]byte(rest), &msg); err != nil {
			return Frame{}, WrapError(ErrorFrameSyntax, "malformed single-message frame body", err)
		}
		return Frame{Kind: FrameMessage, Message: msg}, nil
	case 'a':
		var msgs []string
		if err := json.Unmarshal([]byte(rest), &msgs); err != nil {
			return Frame{}, WrapError(ErrorFrameSyntax, "malformed batch frame body", err)
		}
		return Frame{Kind: FrameBatch, Batch: msgs}, nil
	default:
		return Frame{}, NewError(ErrorFrameSyntax,
			fmt.Sprintf("unknown frame start character %q", raw[0]))
	}
}

// Messages flattens the frame into its inner messages, in arrival order.
func (f Frame) Messages() []string {
	switch f.Kind {
	case FrameMessage:
		return []string{f.Message}
	case FrameBatch:
		return f.Batch
	default:
		return nil
	}
}

// EncodeCommand wraps one outbound command string into the one-element JSON
// array frame format the server accepts.
func EncodeCommand(command string) string {
	encoded, err := json.Marshal([]string{command})
	if err != nil {
		// Marshaling a slice of one string cannot fail.
		panic(err)
	}
	return string(encoded)
}
