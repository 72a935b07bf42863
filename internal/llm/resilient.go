package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sarabun/internal/config"
)

// Resilient wraps a Client with per-attempt timeouts, bounded retries,
// exponential backoff, and failure classification. It makes up to
// MaxRetries+1 attempts; fatal failures abort immediately, everything
// else retries with delay = base * 2^attempt, doubled again when the
// provider rate-limited us. On exhaustion the returned *CompletionError
// carries the kind of the last observed failure and the attempt count.
type Resilient struct {
	inner      Client
	maxRetries int
	timeout    time.Duration
	baseDelay  time.Duration
	logger     *zap.Logger

	// sleep is swappable so tests can observe backoff without waiting.
	sleep func(time.Duration)
}

// NewResilient wraps a provider client with the retry policy from t.
// A nil logger disables logging; logging never affects behavior.
func NewResilient(inner Client, t config.Timeouts, logger *zap.Logger) *Resilient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resilient{
		inner:      inner,
		maxRetries: t.MaxRetries,
		timeout:    t.PerCallTimeout,
		baseDelay:  t.RetryBackoffBase,
		logger:     logger,
		sleep:      time.Sleep,
	}
}

// Complete sends a prompt and returns the completion.
func (r *Resilient) Complete(ctx context.Context, prompt string) (string, error) {
	return r.do(ctx, func(ctx context.Context) (string, error) {
		return r.inner.Complete(ctx, prompt)
	})
}

// CompleteWithSystem sends a prompt with a system message.
func (r *Resilient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return r.do(ctx, func(ctx context.Context) (string, error) {
		return r.inner.CompleteWithSystem(ctx, systemPrompt, userPrompt)
	})
}

// CompleteWithHistory sends a prompt with optional system message and
// prior conversation turns.
func (r *Resilient) CompleteWithHistory(ctx context.Context, systemPrompt string, history []Message, userPrompt string) (string, error) {
	return r.do(ctx, func(ctx context.Context) (string, error) {
		return r.inner.CompleteWithHistory(ctx, systemPrompt, history, userPrompt)
	})
}

func (r *Resilient) do(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	var lastKind Kind
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
		text, err := call(attemptCtx)
		cancel()

		if err == nil {
			if attempt > 0 {
				r.logger.Info("completion succeeded after retry",
					zap.Int("attempt", attempt+1))
			}
			return text, nil
		}

		kind := Classify(err)
		r.logger.Warn("completion attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", r.maxRetries+1),
			zap.String("kind", string(kind)),
			zap.Error(err))

		if kind == KindFatal {
			return "", &CompletionError{Kind: KindFatal, Attempts: attempt + 1, Err: err}
		}

		lastKind, lastErr = kind, err

		if attempt < r.maxRetries {
			delay := r.baseDelay << uint(attempt)
			if kind == KindRateLimited {
				delay *= 2
			}
			r.logger.Debug("backing off before retry",
				zap.Duration("delay", delay),
				zap.String("kind", string(kind)))
			r.sleep(delay)
		}
	}

	return "", &CompletionError{Kind: lastKind, Attempts: r.maxRetries + 1, Err: lastErr}
}
