// Package lifecycle holds shared lifecycle constants used by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps such as DB pings and
// HTTP server drains.
const DefaultTimeout = 10 * time.Second
