// Package redis keeps the pipeline's operational state in Redis: the
// per-network stream checkpoint and the list of blocks that could not be
// indexed.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// defaultMaxFailures bounds the failure list kept per network.
const defaultMaxFailures = 1000

type client struct {
	conn        redis.UniversalClient
	maxFailures int64
}

// Option configures the Redis client.
type Option func(*client)

// WithMaxFailures sets how many block processing failures are kept per
// network. Older entries are trimmed.
//
// Default: 1000.
func WithMaxFailures(n int64) Option {
	return func(c *client) {
		if n > 0 {
			c.maxFailures = n
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

func newClient(conn redis.UniversalClient, opts ...Option) *client {
	c := &client{
		conn:        conn,
		maxFailures: defaultMaxFailures,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClient connects to the Redis server at addr and checks it answers.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, opts...), nil
}
