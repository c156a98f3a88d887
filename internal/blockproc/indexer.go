package blockproc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/validator"
)

// ErrInvalidBlockHash is returned by Indexer for a malformed block hash.
var ErrInvalidBlockHash = errors.New("invalid block hash")

// HeaderFetcher loads a block header by hash.
type HeaderFetcher interface {
	// GetHeaderByHash returns the header of the block as a notification
	// without Network set, or ErrBlockNotFound.
	GetHeaderByHash(ctx context.Context, hash string) (BlockNotification, error)
}

// Indexer indexes a single block on demand, outside the stream. It is used to
// repair blocks left with a stale transaction count.
type Indexer interface {
	IndexBlock(ctx context.Context, hash string) (Result, error)
}

type indexer struct {
	network     string
	headers     HeaderFetcher
	processor   Processor
	callTimeout time.Duration
}

var _ Indexer = (*indexer)(nil)

func (i *indexer) IndexBlock(ctx context.Context, hash string) (Result, error) {
	if !validator.IsBlockHash(hash) {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidBlockHash, hash)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, i.callTimeout)
	n, err := i.headers.GetHeaderByHash(fetchCtx, hash)
	cancel()
	if err != nil {
		return Result{}, fmt.Errorf("fetch header %s: %w", hash, err)
	}

	n.Network = i.network

	return i.processor.Process(ctx, n)
}

// NewIndexer creates an Indexer for network. callTimeout bounds the header fetch.
func NewIndexer(network string, headers HeaderFetcher, processor Processor, callTimeout time.Duration) *indexer {
	return &indexer{
		network:     network,
		headers:     headers,
		processor:   processor,
		callTimeout: callTimeout,
	}
}
