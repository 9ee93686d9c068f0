// Package lifecycle holds shared constants for application startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as the
// initial database ping and the HTTP server drain.
const DefaultTimeout = 10 * time.Second
