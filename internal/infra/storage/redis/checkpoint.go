package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/chainindex/internal/chainstream"

	"github.com/redis/go-redis/v9"
)

const chainstreamKeyPrefix = "chainstream"

// chainstreamCheckpointKey returns "chainstream:checkpoint:<network>".
func chainstreamCheckpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", chainstreamKeyPrefix, network)
}

// SaveCheckpoint stores height as a decimal string with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height uint64) error {
	key := chainstreamCheckpointKey(network)
	return c.conn.Set(ctx, key, strconv.FormatUint(height, 10), 0).Err()
}

// LoadLatestCheckpoint returns chainstream.ErrNoCheckpointFound when the key is absent.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error) {
	key := chainstreamCheckpointKey(network)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainstream.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q for %s: %w", val, network, err)
	}

	return height, nil
}

var _ chainstream.CheckpointStorage = (*client)(nil)
