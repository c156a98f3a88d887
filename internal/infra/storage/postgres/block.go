package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/pkg/safe"

	"github.com/jackc/pgx/v5"
)

// ErrBlockNotStored is returned when updating a block row that does not exist.
var ErrBlockNotStored = errors.New("block not stored")

const (
	insertBlockSQL = `
		INSERT INTO blocks (hash, number, timestamp, parent_hash, gas_used, gas_limit, transaction_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (hash) DO NOTHING`

	updateBlockTransactionCountSQL = `UPDATE blocks SET transaction_count = $2 WHERE hash = $1`

	blockColumns = `hash, number, timestamp, parent_hash, gas_used::text, gas_limit::text, transaction_count`

	listBlocksSQL = `SELECT ` + blockColumns + ` FROM blocks ORDER BY number DESC, hash LIMIT $1 OFFSET $2`

	blockByNumberSQL = `SELECT ` + blockColumns + ` FROM blocks WHERE number = $1 ORDER BY hash LIMIT 1`

	latestBlockSQL = `SELECT ` + blockColumns + ` FROM blocks ORDER BY number DESC, hash LIMIT 1`
)

// InsertBlock implements blockproc.Store. It reports false when a block with
// the same hash already exists, leaving that row untouched.
func (c *client) InsertBlock(ctx context.Context, b blockproc.Block) (bool, error) {
	number, err := safe.Int64(b.Number)
	if err != nil {
		return false, fmt.Errorf("block number: %w", err)
	}

	timestamp, err := safe.Int64(b.Timestamp)
	if err != nil {
		return false, fmt.Errorf("block timestamp: %w", err)
	}

	count, err := safe.Int32(b.TransactionCount)
	if err != nil {
		return false, fmt.Errorf("block transaction count: %w", err)
	}

	tag, err := c.pool.Exec(ctx, insertBlockSQL,
		b.Hash,
		number,
		timestamp,
		b.ParentHash,
		numeric(b.GasUsed),
		numeric(b.GasLimit),
		count,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// UpdateBlockTransactionCount implements blockproc.Store.
func (c *client) UpdateBlockTransactionCount(ctx context.Context, hash string, count uint64) error {
	value, err := safe.Int32(count)
	if err != nil {
		return fmt.Errorf("block transaction count: %w", err)
	}

	tag, err := c.pool.Exec(ctx, updateBlockTransactionCountSQL, hash, value)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotStored, hash)
	}

	return nil
}

func scanBlock(row pgx.Row) (blockproc.Block, error) {
	var (
		b                 blockproc.Block
		number, timestamp int64
		gasUsed, gasLimit string
		transactionCount  int32
		err               error
	)

	if err := row.Scan(&b.Hash, &number, &timestamp, &b.ParentHash, &gasUsed, &gasLimit, &transactionCount); err != nil {
		return blockproc.Block{}, err
	}

	if b.Number, err = safe.Uint64(number); err != nil {
		return blockproc.Block{}, err
	}

	if b.Timestamp, err = safe.Uint64(timestamp); err != nil {
		return blockproc.Block{}, err
	}

	if b.TransactionCount, err = safe.Uint64(transactionCount); err != nil {
		return blockproc.Block{}, err
	}

	if b.GasUsed, err = parseNumeric(gasUsed); err != nil {
		return blockproc.Block{}, err
	}

	if b.GasLimit, err = parseNumeric(gasLimit); err != nil {
		return blockproc.Block{}, err
	}

	return b, nil
}

// ListBlocks implements explorer.Reader.
func (c *client) ListBlocks(ctx context.Context, limit, offset int) ([]blockproc.Block, error) {
	rows, err := c.pool.Query(ctx, listBlocksSQL, limit, offset)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (blockproc.Block, error) {
		return scanBlock(row)
	})
}

// BlockByNumber implements explorer.Reader. When several blocks share the
// number, the one with the lowest hash is returned.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (blockproc.Block, error) {
	value, err := safe.Int64(number)
	if err != nil {
		return blockproc.Block{}, fmt.Errorf("%w: block %d", explorer.ErrNotFound, number)
	}

	b, err := scanBlock(c.pool.QueryRow(ctx, blockByNumberSQL, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return blockproc.Block{}, fmt.Errorf("%w: block %d", explorer.ErrNotFound, number)
	}

	return b, err
}
