package constants

import "time"

// Host Bridge Constants
const (
	// HostAddr is the default listen address of the HTTP bridge
	HostAddr = ":8080"

	// WSWriteTimeout bounds a single websocket write
	WSWriteTimeout = 5 * time.Second

	// WSReadLimit caps the size of an inbound websocket message
	WSReadLimit = 4096

	// WSOutboxSize is the per-connection buffer of pending server events
	WSOutboxSize = 64

	// DefaultViewportWidth and DefaultViewportHeight size the scene until a client reports its viewport
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)
