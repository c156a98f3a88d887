package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/chainindex/internal/blockproc"

	"github.com/urfave/cli/v3"
)

// indexBlockCommand returns a CLI command that indexes a single block by
// hash. Running it on an already indexed block is harmless, which makes it
// the way to repair a block whose transactions were only partly stored.
//
// Usage example:
//
//	chainindex index-block --hash 0xabc...
func indexBlockCommand(idx blockproc.Indexer) *cli.Command {
	return &cli.Command{
		Name:        "index-block",
		Description: "Indexes a single block by hash, outside the stream.",
		Usage:       "Fetches the block header and runs it through the block processor once.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Hash of the block to index",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := idx.IndexBlock(ctx, c.String("hash"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer,
				"block %d (%s): %d transactions accounted, %d skipped, %d not persisted, %d without receipt, count reconciled: %t\n",
				result.Block.Number,
				result.Block.Hash,
				result.TransactionCount,
				result.Skipped,
				result.NotPersisted,
				result.ReceiptsMissing,
				result.CountReconciled,
			)

			return err
		},
	}
}

type failureOutput struct {
	ProcessingID string    `json:"processingId"`
	BlockHash    string    `json:"blockHash"`
	BlockNumber  uint64    `json:"blockNumber"`
	Attempts     uint8     `json:"attempts"`
	LastError    string    `json:"lastError,omitempty"`
	FailedAt     time.Time `json:"failedAt"`
}

// listFailuresCommand returns a CLI command that prints the most recent
// blocks the pipeline gave up on, one JSON object per line. The hashes can be
// fed back to index-block.
//
// Usage example:
//
//	chainindex failures --limit 10
func listFailuresCommand(network string, fl FailureLister) *cli.Command {
	return &cli.Command{
		Name:        "failures",
		Description: "Lists blocks that could not be indexed after every attempt.",
		Usage:       "Prints recent block processing failures, newest first.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of failures to print",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			failures, err := fl.RecentFailures(ctx, network, int64(c.Int("limit")))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			for _, f := range failures {
				out := failureOutput{
					ProcessingID: f.ProcessingID,
					BlockHash:    f.Notification.Hash,
					BlockNumber:  f.Notification.Number,
					Attempts:     f.Attempts,
					FailedAt:     f.FailedAt,
				}
				if f.LastError != nil {
					out.LastError = f.LastError.Error()
				}

				if err := enc.Encode(out); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
