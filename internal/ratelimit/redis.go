package ratelimit

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRedisNotConfigured = errors.New("redis: REDIS_URL not configured")

// Connect opens a Redis client for redis:// or rediss:// (TLS) URLs and pings it.
// password overrides any password embedded in the URL.
func Connect(ctx context.Context, rawURL, password string) (*redis.Client, error) {
	opts, err := clientOptions(rawURL, password)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: connection failed: %w", err)
	}

	return client, nil
}

func clientOptions(rawURL, password string) (*redis.Options, error) {
	if rawURL == "" {
		return nil, ErrRedisNotConfigured
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if opts.TLSConfig != nil {
		opts.TLSConfig.MinVersion = tls.VersionTLS12
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	return opts, nil
}
