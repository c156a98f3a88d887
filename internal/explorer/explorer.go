// Package explorer serves read access to indexed blocks and transactions.
package explorer

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/chainindex/internal/blockproc"
)

const (
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit = 100

	// MaxLimit caps the page size of list queries.
	MaxLimit = 1000
)

// ErrNotFound is returned when the requested block or transaction is not indexed.
var ErrNotFound = errors.New("not found")

// PageRequest selects a window of a list ordered from newest to oldest.
type PageRequest struct {
	Limit  int
	Offset int
}

// normalize applies the default page size and clamps out-of-range values.
func (r PageRequest) normalize() PageRequest {
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}

	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}

	if r.Offset < 0 {
		r.Offset = 0
	}

	return r
}

// Page describes the window that was actually served.
type Page struct {
	Limit   int
	Offset  int
	HasMore bool
}

// Stats summarizes the indexed data.
type Stats struct {
	TotalTransactions uint64
	TotalBlocks       uint64
	LatestBlock       *blockproc.Block // Nil while nothing is indexed
}

// Reader is the storage backing the explorer.
type Reader interface {
	// ListBlocks returns up to limit blocks, highest number first.
	ListBlocks(ctx context.Context, limit, offset int) ([]blockproc.Block, error)

	// BlockByNumber returns a block at number, or ErrNotFound.
	BlockByNumber(ctx context.Context, number uint64) (blockproc.Block, error)

	// ListTransactions returns up to limit transactions, newest block first
	// and in block order within a block.
	ListTransactions(ctx context.Context, limit, offset int) ([]blockproc.Transaction, error)

	// TransactionByHash returns the transaction with hash, or ErrNotFound.
	TransactionByHash(ctx context.Context, hash string) (blockproc.Transaction, error)

	// Stats returns row counts and the highest block.
	Stats(ctx context.Context) (Stats, error)
}

// Service is the read API over indexed data.
type Service interface {
	Blocks(ctx context.Context, req PageRequest) ([]blockproc.Block, Page, error)
	Block(ctx context.Context, number uint64) (blockproc.Block, error)
	Transactions(ctx context.Context, req PageRequest) ([]blockproc.Transaction, Page, error)
	Transaction(ctx context.Context, hash string) (blockproc.Transaction, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	reader Reader
}

var _ Service = (*service)(nil)

// Blocks lists a page of blocks. One extra row is requested to tell whether
// another page exists.
func (s *service) Blocks(ctx context.Context, req PageRequest) ([]blockproc.Block, Page, error) {
	req = req.normalize()

	blocks, err := s.reader.ListBlocks(ctx, req.Limit+1, req.Offset)
	if err != nil {
		return nil, Page{}, err
	}

	page := Page{Limit: req.Limit, Offset: req.Offset, HasMore: len(blocks) > req.Limit}
	if page.HasMore {
		blocks = blocks[:req.Limit]
	}

	return blocks, page, nil
}

func (s *service) Block(ctx context.Context, number uint64) (blockproc.Block, error) {
	return s.reader.BlockByNumber(ctx, number)
}

// Transactions lists a page of transactions, see Blocks.
func (s *service) Transactions(ctx context.Context, req PageRequest) ([]blockproc.Transaction, Page, error) {
	req = req.normalize()

	txs, err := s.reader.ListTransactions(ctx, req.Limit+1, req.Offset)
	if err != nil {
		return nil, Page{}, err
	}

	page := Page{Limit: req.Limit, Offset: req.Offset, HasMore: len(txs) > req.Limit}
	if page.HasMore {
		txs = txs[:req.Limit]
	}

	return txs, page, nil
}

// Transaction looks hash up case-insensitively. Hashes are stored in lower case.
func (s *service) Transaction(ctx context.Context, hash string) (blockproc.Transaction, error) {
	return s.reader.TransactionByHash(ctx, strings.ToLower(hash))
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	return s.reader.Stats(ctx)
}

// New creates an explorer Service over reader.
func New(reader Reader) *service {
	return &service{
		reader: reader,
	}
}
