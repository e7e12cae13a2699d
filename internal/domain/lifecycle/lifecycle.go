// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of
// long-lived resources (HTTP server, database connections).
const DefaultTimeout = 15 * time.Second
