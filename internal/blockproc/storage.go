package blockproc

import "context"

// Store persists blocks and transactions.
//
// Inserts are conflict-free: inserting a row whose hash already exists is a
// silent no-op reported as inserted == false, never an error.
type Store interface {
	// InsertBlock stores the block unless a block with the same hash exists.
	InsertBlock(ctx context.Context, block Block) (inserted bool, err error)

	// InsertTransaction stores the transaction unless one with the same hash exists.
	InsertTransaction(ctx context.Context, tx Transaction) (inserted bool, err error)

	// UpdateBlockTransactionCount sets the transaction count of the block with the given hash.
	UpdateBlockTransactionCount(ctx context.Context, hash string, count uint64) error
}
