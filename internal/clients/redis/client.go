package redis

import (
	"context"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client not initialized")

// WindowState is the outcome of one sliding window admission attempt
type WindowState struct {
	// Count is the number of requests already in the window, excluding this one
	Count    int64
	Admitted bool
	// Oldest is the timestamp of the oldest request still in the window, zero when empty
	Oldest time.Time
}

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient connects to the Redis instance at addr and verifies it with a ping
func NewClient(ctx context.Context, addr string, logger *observability.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx, observability.Field{Key: "addr", Value: addr}), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Admit records a request at now in the sorted set under key unless limit requests already
// fall within the trailing window. Members are scored by their millisecond timestamp.
func (c *Client) Admit(ctx context.Context, key string, now time.Time, window time.Duration, limit int64) (WindowState, error) {
	if c == nil || c.client == nil {
		return WindowState{}, ErrNotInitialized
	}

	windowStart := now.Add(-window).UnixMilli()
	if err := c.client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10)).Err(); err != nil {
		return WindowState{}, fmt.Errorf("failed to trim window: %w", err)
	}

	count, err := c.client.ZCard(ctx, key).Result()
	if err != nil {
		return WindowState{}, fmt.Errorf("failed to count window: %w", err)
	}

	state := WindowState{Count: count}
	oldest, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return WindowState{}, fmt.Errorf("failed to read window start: %w", err)
	}
	if len(oldest) > 0 {
		state.Oldest = time.UnixMilli(int64(oldest[0].Score))
	}

	if count >= limit {
		return state, nil
	}

	nowMs := now.UnixMilli()
	// Suffix the member so concurrent requests in the same millisecond are counted separately
	member := fmt.Sprintf("%d-%d", nowMs, count)
	if err := c.client.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return WindowState{}, fmt.Errorf("failed to record request: %w", err)
	}

	if err := c.client.Expire(ctx, key, 2*window).Err(); err != nil {
		c.logger.Warn(ctx, "failed to set expiration on rate limit key")
	}

	state.Admitted = true
	return state, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
