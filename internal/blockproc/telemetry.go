package blockproc

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/chainindex/internal/blockproc"

// Block outcomes reported on chainindex.blocks.processed.
const (
	outcomeIndexed           = "indexed"
	outcomeAnchorFailed      = "anchor_failed"
	outcomeEnumerationFailed = "enumeration_failed"
)

type instruments struct {
	blocksProcessed metric.Int64Counter
	txAccounted     metric.Int64Counter
	receiptsMissing metric.Int64Counter
	blockDuration   metric.Float64Histogram
}

// newInstruments creates the blockproc instruments. The SDK hands back usable
// instruments even when it reports an error, so the error is only informative.
func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)

	blocksProcessed, err1 := meter.Int64Counter("chainindex.blocks.processed",
		metric.WithDescription("Block notifications handled, by outcome."),
		metric.WithUnit("{block}"),
	)
	txAccounted, err2 := meter.Int64Counter("chainindex.transactions.accounted",
		metric.WithDescription("Transactions stored or already present."),
		metric.WithUnit("{transaction}"),
	)
	receiptsMissing, err3 := meter.Int64Counter("chainindex.receipts.missing",
		metric.WithDescription("Transactions stored without receipt data."),
		metric.WithUnit("{transaction}"),
	)
	blockDuration, err4 := meter.Float64Histogram("chainindex.block.duration",
		metric.WithDescription("Time spent processing one block notification."),
		metric.WithUnit("s"),
	)

	return &instruments{
		blocksProcessed: blocksProcessed,
		txAccounted:     txAccounted,
		receiptsMissing: receiptsMissing,
		blockDuration:   blockDuration,
	}, errors.Join(err1, err2, err3, err4)
}

func (i *instruments) recordBlock(ctx context.Context, network, outcome string, started time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("block.network", network),
		attribute.String("outcome", outcome),
	)

	i.blocksProcessed.Add(ctx, 1, attrs)
	i.blockDuration.Record(ctx, time.Since(started).Seconds(), attrs)
}
