package blockproc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAnchorFailed is returned when the block row could not be stored.
	// No transaction of the block has been touched.
	ErrAnchorFailed = errors.New("block anchor failed")

	// ErrEnumerationFailed is returned when the full block could not be fetched.
	// The block row exists with a transaction count of zero.
	ErrEnumerationFailed = errors.New("block enumeration failed")
)

// Processor drives one block notification through the ingestion sequence.
type Processor interface {
	// Process stores the block, enriches and stores its transactions and
	// reconciles the block's transaction count.
	//
	// Only ErrAnchorFailed and ErrEnumerationFailed are returned; every other
	// failure is logged and reflected in the Result. Calling Process again
	// with the same notification is safe.
	Process(ctx context.Context, notification BlockNotification) (Result, error)
}

type processor struct {
	store    Store
	chain    Blockchain
	enricher Enricher
	cfg      config
	tracer   trace.Tracer
	metrics  *instruments
}

var _ Processor = (*processor)(nil)

func (p *processor) Process(ctx context.Context, n BlockNotification) (Result, error) {
	started := time.Now()

	ctx, span := p.tracer.Start(ctx, "blockproc.Process", trace.WithAttributes(
		attribute.String("block.network", n.Network),
		attribute.String("block.hash", n.Hash),
		attribute.String("block.number", strconv.FormatUint(n.Number, 10)),
	))
	defer span.End()

	ctx = logger.Derive(ctx,
		"block.network", n.Network,
		"block.hash", n.Hash,
		"block.number", n.Number,
	)

	block := Block{
		Hash:       n.Hash,
		Number:     n.Number,
		Timestamp:  n.Timestamp,
		ParentHash: n.ParentHash,
		GasUsed:    orZero(n.GasUsed),
		GasLimit:   orZero(n.GasLimit),
	}
	result := Result{Block: block}

	if err := p.anchor(ctx, n, block); err != nil {
		p.fail(ctx, span, n.Network, outcomeAnchorFailed, started, err)
		return result, err
	}

	full, err := p.fetchBlock(ctx, n.Hash)
	if err != nil {
		logger.Error(ctx, "failed to fetch full block", "error", err)
		err = fmt.Errorf("%w: %w", ErrEnumerationFailed, err)
		p.fail(ctx, span, n.Network, outcomeEnumerationFailed, started, err)
		return result, err
	}

	p.enumerate(ctx, block.Ref(), full.Transactions, &result)
	result.Block.TransactionCount = result.TransactionCount

	if err := p.store.UpdateBlockTransactionCount(ctx, n.Hash, result.TransactionCount); err != nil {
		logger.Error(ctx, "failed to update block transaction count",
			"block.transaction_count", result.TransactionCount,
			"error", err,
		)
	} else {
		result.CountReconciled = true
	}

	p.metrics.txAccounted.Add(ctx, int64(result.TransactionCount))
	p.metrics.recordBlock(ctx, n.Network, outcomeIndexed, started)
	span.SetAttributes(attribute.Int("block.transaction_count", int(result.TransactionCount)))

	logger.Info(ctx, "block indexed",
		"block.number", n.Number,
		"block.transaction_count", result.TransactionCount,
		"block.skipped", result.Skipped,
		"block.not_persisted", result.NotPersisted,
		"block.receipts_missing", result.ReceiptsMissing,
	)

	return result, nil
}

// anchor validates the notification and stores the block row with a zero count.
func (p *processor) anchor(ctx context.Context, n BlockNotification, block Block) error {
	if err := validator.Validate(n); err != nil {
		logger.Error(ctx, "invalid block notification", "error", err)
		return fmt.Errorf("%w: %w", ErrAnchorFailed, err)
	}

	if _, err := p.store.InsertBlock(ctx, block); err != nil {
		logger.Error(ctx, "failed to store block", "error", err)
		return fmt.Errorf("%w: %w", ErrAnchorFailed, err)
	}

	return nil
}

func (p *processor) fetchBlock(ctx context.Context, hash string) (FullBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.callTimeout)
	defer cancel()

	return p.chain.GetBlockByHash(ctx, hash)
}

// enumerate hands every well-formed entry to the enricher and tallies the outcome.
// Entries run on a pool of cfg.txWorkers goroutines; with a single worker they
// run one after another in node order.
func (p *processor) enumerate(ctx context.Context, ref BlockRef, entries []TransactionEntry, result *Result) {
	var (
		accounted       atomic.Uint64
		notPersisted    atomic.Int64
		receiptsMissing atomic.Int64
		g               errgroup.Group
	)

	g.SetLimit(p.cfg.txWorkers)

	for position, entry := range entries {
		if entry.Body == nil {
			logger.Warn(ctx, "skipping transaction entry without body",
				"tx.position", position,
				"tx.hash", entry.Hash,
			)
			result.Skipped++
			continue
		}

		if entry.Body.Hash == "" {
			logger.Warn(ctx, "skipping transaction entry without hash", "tx.position", position)
			result.Skipped++
			continue
		}

		body := *entry.Body
		g.Go(func() error {
			enrichment := p.enricher.Enrich(ctx, body, ref)

			if enrichment.Accounted {
				accounted.Add(1)
			} else {
				notPersisted.Add(1)
			}

			if !enrichment.ReceiptFound {
				receiptsMissing.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	result.TransactionCount = accounted.Load()
	result.NotPersisted = int(notPersisted.Load())
	result.ReceiptsMissing = int(receiptsMissing.Load())
}

func (p *processor) fail(ctx context.Context, span trace.Span, network, outcome string, started time.Time, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	p.metrics.recordBlock(ctx, network, outcome, started)
}

// NewProcessor creates a Processor that stores into store and reads from chain.
// The same options configure the enricher it builds.
func NewProcessor(store Store, chain Blockchain, opts ...Option) *processor {
	cfg := newConfig(opts...)

	metrics, err := newInstruments(cfg.meterProvider)
	if err != nil {
		logger.Warn(context.Background(), "blockproc instruments partially unavailable", "error", err)
	}

	return &processor{
		store:    store,
		chain:    chain,
		enricher: NewEnricher(store, chain, opts...),
		cfg:      cfg,
		tracer:   cfg.tracerProvider.Tracer(instrumentationName),
		metrics:  metrics,
	}
}
