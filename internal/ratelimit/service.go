package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"time"

	"github.com/google/uuid"
)

// DefaultWindow is the sliding window merchant request budgets are counted over
const DefaultWindow = time.Minute

var ErrWindowUnavailable = errors.New("rate limit window unavailable")

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits merchant API requests to a fixed number per window
type Service struct {
	window Window
	limit  int
	size   time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a limiter admitting limit requests per merchant per minute
func NewService(window Window, limit int, logger *observability.Logger) *Service {
	return &Service{
		window: window,
		limit:  limit,
		size:   DefaultWindow,
		logger: logger,
		now:    time.Now,
	}
}

// Check admits one request for the merchant if it is still within its budget
func (s *Service) Check(ctx context.Context, merchantID uuid.UUID) (Result, error) {
	now := s.now()
	state, err := s.window.Admit(ctx, "rl:merchant:"+merchantID.String(), now, s.size, int64(s.limit))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWindowUnavailable, err)
	}

	resetAt := now.Add(s.size)
	if !state.Oldest.IsZero() {
		resetAt = state.Oldest.Add(s.size)
	}

	if !state.Admitted {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	remaining := s.limit - int(state.Count) - 1
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
