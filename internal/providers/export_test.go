package providers

import "time"

// RateLimitedProvider exposes the unexported rateLimitedProvider to
// external test packages.
type RateLimitedProvider = rateLimitedProvider

// Interval exposes the configured tick interval for tests.
func (p *rateLimitedProvider) Interval() time.Duration { return p.interval }
