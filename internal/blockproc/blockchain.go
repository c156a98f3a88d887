package blockproc

import (
	"context"
	"errors"
)

var (
	// ErrBlockNotFound is returned by Blockchain when the node does not know the block.
	ErrBlockNotFound = errors.New("block not found")

	// ErrReceiptNotFound is returned by Blockchain when the node has no receipt for the transaction.
	ErrReceiptNotFound = errors.New("receipt not found")
)

// Blockchain is the node-facing client used to load block bodies and receipts.
type Blockchain interface {
	// GetBlockByHash returns the block with its transaction list.
	GetBlockByHash(ctx context.Context, hash string) (FullBlock, error)

	// GetTransactionReceipt returns the receipt of the transaction with the given hash.
	GetTransactionReceipt(ctx context.Context, hash string) (Receipt, error)
}
