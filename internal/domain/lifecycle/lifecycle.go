// Package lifecycle holds process-wide lifecycle settings shared by servers and infra hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (database ping, server shutdown).
const DefaultTimeout = 10 * time.Second
