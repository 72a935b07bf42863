package config

import "time"

// Timeouts is the retry policy for the completion client: how long a
// single attempt may run, how long the first backoff is, and how many
// retries follow the initial attempt.
type Timeouts struct {
	PerCallTimeout   time.Duration `json:"per_call_timeout"`
	RetryBackoffBase time.Duration `json:"retry_backoff_base"`
	MaxRetries       int           `json:"max_retries"`
}

// DefaultTimeouts suits interactive use against hosted providers.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		PerCallTimeout:   60 * time.Second,
		RetryBackoffBase: time.Second,
		MaxRetries:       3,
	}
}

// FastTimeouts trades resilience for latency; useful for smoke runs and
// local providers.
func FastTimeouts() Timeouts {
	return Timeouts{
		PerCallTimeout:   30 * time.Second,
		RetryBackoffBase: 500 * time.Millisecond,
		MaxRetries:       2,
	}
}
