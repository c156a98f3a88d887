package blockproc

import (
	"context"
	"math/big"

	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Enrichment reports what happened to one transaction.
type Enrichment struct {
	// Accounted is true when the transaction row exists after the call,
	// whether it was written now or by an earlier pass.
	Accounted bool

	// Inserted is true only when this call wrote the row.
	Inserted bool

	// ReceiptFound is false when the record was built without receipt data.
	ReceiptFound bool
}

// Enricher turns a transaction body into a stored Transaction record.
type Enricher interface {
	// Enrich fetches the receipt, builds the record and stores it.
	// A failed receipt fetch degrades the record; a failed insert leaves the
	// transaction unaccounted. Neither is returned as an error.
	Enrich(ctx context.Context, body TransactionBody, block BlockRef) Enrichment
}

type enricher struct {
	store   Store
	chain   Blockchain
	cfg     config
	tracer  trace.Tracer
	metrics *instruments
}

var _ Enricher = (*enricher)(nil)

func (e *enricher) Enrich(ctx context.Context, body TransactionBody, block BlockRef) Enrichment {
	ctx, span := e.tracer.Start(ctx, "blockproc.Enrich", trace.WithAttributes(
		attribute.String("tx.hash", body.Hash),
	))
	defer span.End()

	var (
		result  Enrichment
		gasUsed = new(big.Int)
		status  = StatusUnknown
	)

	if e.cfg.optimisticStatus {
		status = StatusSuccess
	}

	receipt, err := e.fetchReceipt(ctx, body.Hash)
	switch {
	case err != nil:
		logger.Warn(ctx, "transaction receipt unavailable, storing without it",
			"tx.hash", body.Hash,
			"error", err,
		)
		e.metrics.receiptsMissing.Add(ctx, 1)
	default:
		result.ReceiptFound = true
		status = receipt.Status
		if receipt.GasUsed != nil {
			gasUsed = receipt.GasUsed
		}
	}

	tx := buildTransaction(body, block, gasUsed, status)

	inserted, err := e.store.InsertTransaction(ctx, tx)
	if err != nil {
		logger.Error(ctx, "failed to store transaction",
			"tx.hash", body.Hash,
			"error", err,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction not persisted")
		return result
	}

	result.Accounted = true
	result.Inserted = inserted
	span.SetAttributes(attribute.Bool("tx.inserted", inserted))

	return result
}

func (e *enricher) fetchReceipt(ctx context.Context, hash string) (Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.callTimeout)
	defer cancel()

	return e.chain.GetTransactionReceipt(ctx, hash)
}

// buildTransaction fills absent optional fields with their zero value.
// Block linkage and timestamp come from the enclosing block.
func buildTransaction(body TransactionBody, block BlockRef, gasUsed *big.Int, status TxStatus) Transaction {
	tx := Transaction{
		Hash:        body.Hash,
		BlockNumber: block.Number,
		BlockHash:   block.Hash,
		From:        body.From,
		To:          body.To,
		Value:       orZero(body.Value),
		GasPrice:    orZero(body.GasPrice),
		GasUsed:     orZero(gasUsed),
		GasLimit:    orZero(body.Gas),
		Input:       body.Input,
		Timestamp:   block.Timestamp,
		Status:      status,
	}

	if tx.Input == nil {
		tx.Input = []byte{}
	}

	if body.Nonce != nil {
		tx.Nonce = *body.Nonce
	}

	if body.TransactionIndex != nil {
		tx.TransactionIndex = *body.TransactionIndex
	}

	return tx
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}

// NewEnricher creates an Enricher that reads receipts from chain and writes to store.
func NewEnricher(store Store, chain Blockchain, opts ...Option) *enricher {
	cfg := newConfig(opts...)

	metrics, err := newInstruments(cfg.meterProvider)
	if err != nil {
		logger.Warn(context.Background(), "blockproc instruments partially unavailable", "error", err)
	}

	return &enricher{
		store:   store,
		chain:   chain,
		cfg:     cfg,
		tracer:  cfg.tracerProvider.Tracer(instrumentationName),
		metrics: metrics,
	}
}
