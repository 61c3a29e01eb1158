package screeps

import "time"

// DefaultAPIURL is the official server's API base.
const DefaultAPIURL = "https://screeps.com/api/"

// Config controls how the SDK connects.
type Config struct {
	// APIURL is the HTTP API base; the websocket URL is derived from it.
	APIURL string
	// Token is the auth token obtained from the sign-in endpoint.
	Token            string
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
}

// DefaultConfig returns sensible defaults for the official server.
func DefaultConfig() Config {
	return Config{
		APIURL:           DefaultAPIURL,
		HandshakeTimeout: 10 * time.Second,
		ReadTimeout:      60 * time.Second,
		WriteTimeout:     10 * time.Second,
	}
}
