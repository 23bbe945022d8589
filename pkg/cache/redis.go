// Package cache wires the optional Redis backend used for session state.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuspulse/campus-api/pkg/config"
)

// Session checks sit on every authenticated request; short timeouts keep a
// slow backend from stalling auth.
const (
	dialTimeout = 5 * time.Second
	opTimeout   = 2 * time.Second
)

// NewRedis returns a connected Redis client, or an error when the backend is
// unreachable. Callers treat the client as optional; the API runs without it.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
