package postgres

import (
	"context"
	"errors"

	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/pkg/safe"

	"github.com/jackc/pgx/v5"
)

const countsSQL = `SELECT (SELECT count(*) FROM transactions), (SELECT count(*) FROM blocks)`

// Stats implements explorer.Reader. Both queries travel in one round trip.
func (c *client) Stats(ctx context.Context) (explorer.Stats, error) {
	batch := &pgx.Batch{}
	batch.Queue(countsSQL)
	batch.Queue(latestBlockSQL)

	results := c.pool.SendBatch(ctx, batch)
	defer results.Close()

	var (
		stats            explorer.Stats
		totalTxs, blocks int64
	)

	if err := results.QueryRow().Scan(&totalTxs, &blocks); err != nil {
		return explorer.Stats{}, err
	}

	var err error
	if stats.TotalTransactions, err = safe.Uint64(totalTxs); err != nil {
		return explorer.Stats{}, err
	}

	if stats.TotalBlocks, err = safe.Uint64(blocks); err != nil {
		return explorer.Stats{}, err
	}

	latest, err := scanBlock(results.QueryRow())
	switch {
	case err == nil:
		stats.LatestBlock = &latest
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return explorer.Stats{}, err
	}

	return stats, nil
}
