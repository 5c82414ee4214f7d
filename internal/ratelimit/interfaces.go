package ratelimit

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=ratelimit

import (
	"context"
	"rewards-server/internal/clients/redis"
	"time"
)

// Window admits requests against a sliding window shared by all API instances
type Window interface {
	Admit(ctx context.Context, key string, now time.Time, window time.Duration, limit int64) (redis.WindowState, error)
}
