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

const (
	insertTransactionSQL = `
		INSERT INTO transactions (
			hash, block_number, block_hash, transaction_index, from_address, to_address,
			value, gas_price, gas_used, gas_limit, input, nonce, timestamp, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (hash) DO NOTHING`

	transactionColumns = `
		hash, block_number, block_hash, transaction_index, from_address, to_address,
		value::text, gas_price::text, gas_used::text, gas_limit::text, input, nonce, timestamp, status`

	listTransactionsSQL = `SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY block_number DESC, transaction_index, hash
		LIMIT $1 OFFSET $2`

	transactionByHashSQL = `SELECT ` + transactionColumns + ` FROM transactions WHERE hash = $1`
)

// InsertTransaction implements blockproc.Store. It reports false when a
// transaction with the same hash already exists, leaving that row untouched.
func (c *client) InsertTransaction(ctx context.Context, tx blockproc.Transaction) (bool, error) {
	blockNumber, err := safe.Int64(tx.BlockNumber)
	if err != nil {
		return false, fmt.Errorf("transaction block number: %w", err)
	}

	index, err := safe.Int32(tx.TransactionIndex)
	if err != nil {
		return false, fmt.Errorf("transaction index: %w", err)
	}

	nonce, err := safe.Int64(tx.Nonce)
	if err != nil {
		return false, fmt.Errorf("transaction nonce: %w", err)
	}

	timestamp, err := safe.Int64(tx.Timestamp)
	if err != nil {
		return false, fmt.Errorf("transaction timestamp: %w", err)
	}

	input := tx.Input
	if input == nil {
		input = []byte{}
	}

	tag, err := c.pool.Exec(ctx, insertTransactionSQL,
		tx.Hash,
		blockNumber,
		tx.BlockHash,
		index,
		tx.From,
		tx.To,
		numeric(tx.Value),
		numeric(tx.GasPrice),
		numeric(tx.GasUsed),
		numeric(tx.GasLimit),
		input,
		nonce,
		timestamp,
		statusValue(tx.Status),
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func scanTransaction(row pgx.Row) (blockproc.Transaction, error) {
	var (
		tx                                 blockproc.Transaction
		blockNumber, nonce, timestamp      int64
		index                              int32
		value, gasPrice, gasUsed, gasLimit string
		status                             *int16
		err                                error
	)

	if err := row.Scan(
		&tx.Hash, &blockNumber, &tx.BlockHash, &index, &tx.From, &tx.To,
		&value, &gasPrice, &gasUsed, &gasLimit, &tx.Input, &nonce, &timestamp, &status,
	); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.BlockNumber, err = safe.Uint64(blockNumber); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.TransactionIndex, err = safe.Uint64(index); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.Nonce, err = safe.Uint64(nonce); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.Timestamp, err = safe.Uint64(timestamp); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.Value, err = parseNumeric(value); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.GasPrice, err = parseNumeric(gasPrice); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.GasUsed, err = parseNumeric(gasUsed); err != nil {
		return blockproc.Transaction{}, err
	}

	if tx.GasLimit, err = parseNumeric(gasLimit); err != nil {
		return blockproc.Transaction{}, err
	}

	tx.Status = statusFromValue(status)

	return tx, nil
}

// ListTransactions implements explorer.Reader.
func (c *client) ListTransactions(ctx context.Context, limit, offset int) ([]blockproc.Transaction, error) {
	rows, err := c.pool.Query(ctx, listTransactionsSQL, limit, offset)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (blockproc.Transaction, error) {
		return scanTransaction(row)
	})
}

// TransactionByHash implements explorer.Reader.
func (c *client) TransactionByHash(ctx context.Context, hash string) (blockproc.Transaction, error) {
	tx, err := scanTransaction(c.pool.QueryRow(ctx, transactionByHashSQL, hash))
	if errors.Is(err, pgx.ErrNoRows) {
		return blockproc.Transaction{}, fmt.Errorf("%w: transaction %s", explorer.ErrNotFound, hash)
	}

	return tx, err
}
