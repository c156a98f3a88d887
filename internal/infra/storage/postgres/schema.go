package postgres

import (
	"context"
	"fmt"
)

// schema is applied on every start. Each statement is a no-op when the object exists.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS blocks (
		hash              TEXT PRIMARY KEY,
		number            BIGINT NOT NULL,
		timestamp         BIGINT NOT NULL,
		parent_hash       TEXT NOT NULL,
		gas_used          NUMERIC(78, 0) NOT NULL,
		gas_limit         NUMERIC(78, 0) NOT NULL,
		transaction_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS blocks_number_idx ON blocks (number)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		hash              TEXT PRIMARY KEY,
		block_number      BIGINT NOT NULL,
		block_hash        TEXT NOT NULL,
		transaction_index INTEGER NOT NULL,
		from_address      TEXT NOT NULL,
		to_address        TEXT,
		value             NUMERIC(78, 0) NOT NULL,
		gas_price         NUMERIC(78, 0) NOT NULL,
		gas_used          NUMERIC(78, 0) NOT NULL,
		gas_limit         NUMERIC(78, 0) NOT NULL,
		input             BYTEA NOT NULL DEFAULT '\x',
		nonce             BIGINT NOT NULL,
		timestamp         BIGINT NOT NULL,
		status            SMALLINT
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_block_hash_idx ON transactions (block_hash)`,
	`CREATE INDEX IF NOT EXISTS transactions_block_position_idx ON transactions (block_number, transaction_index)`,
}

func (c *client) bootstrap(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
