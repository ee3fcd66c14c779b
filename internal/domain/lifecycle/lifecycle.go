// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown operations such as
// database pings and HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
