package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a completion failure for retry policy and reporting.
type Kind string

const (
	// KindTimeout means a single attempt exceeded its deadline. Retryable.
	KindTimeout Kind = "timeout"
	// KindRateLimited means the provider throttled the request. Retryable
	// with a doubled backoff.
	KindRateLimited Kind = "rate_limited"
	// KindTransient covers network-flavored failures. Retryable.
	KindTransient Kind = "transient"
	// KindFatal is everything else. Never retried.
	KindFatal Kind = "fatal"
)

// Retryable reports whether a failure of this kind may be retried.
func (k Kind) Retryable() bool {
	return k != KindFatal
}

// CompletionError is the terminal error of the resilient completion
// client. Kind reflects the last observed failure and Attempts counts how
// many attempts were made before giving up.
type CompletionError struct {
	Kind     Kind
	Attempts int
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed (%s) after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

var rateLimitSignatures = []string{
	"rate limit",
	"ratelimit",
	"too many requests",
	"429",
}

var transientSignatures = []string{
	"connection reset",
	"connection refused",
	"broken pipe",
	"502",
	"503",
	"504",
	"bad gateway",
	"service unavailable",
	"gateway timeout",
	"network",
	"timeout",
	"temporar",
	"eof",
}

// Classify maps a raw provider error onto a Kind. Deadline expiry is a
// timeout; otherwise the error message is matched against rate-limit and
// transient-network signatures, and anything unrecognized is fatal.
func Classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindFatal
	}

	msg := strings.ToLower(err.Error())

	for _, sig := range rateLimitSignatures {
		if strings.Contains(msg, sig) {
			return KindRateLimited
		}
	}
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return KindTransient
		}
	}
	return KindFatal
}
