package screeps

// ConnectionState represents the current state of the socket session.
type ConnectionState int

const (
	// StateDisconnected means no session is active.
	StateDisconnected ConnectionState = iota

	// StateConnecting means the transport has been dialed but the SockJS
	// open frame has not arrived yet.
	StateConnecting

	// StateAwaitingAuth means the auth command has been sent and the server
	// has not replied yet.
	StateAwaitingAuth

	// StateAuthenticated means the session is fully established and channels
	// may be subscribed to.
	StateAuthenticated
)

// String returns the string representation of a ConnectionState.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAwaitingAuth:
		return "awaiting_auth"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// StateEvent records a session state transition.
type StateEvent struct {
	OldState ConnectionState
	NewState ConnectionState
	Error    error // Optional error that caused the state change
}
