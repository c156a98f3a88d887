package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/chainindex/internal/blockproc"

	"github.com/redis/go-redis/v9"
)

const blockprocKeyPrefix = "blockproc"

// blockprocFailuresKey returns "blockproc:failures:<network>".
func blockprocFailuresKey(network string) string {
	return fmt.Sprintf("%s:failures:%s", blockprocKeyPrefix, network)
}

// FailureRecord is the stored form of a block the pipeline gave up on.
type FailureRecord struct {
	ProcessingID  string            `json:"processingId"`
	Network       string            `json:"network"`
	BlockHash     string            `json:"blockHash"`
	BlockNumber   uint64            `json:"blockNumber"`
	Attempts      uint8             `json:"attempts"`
	LastError     string            `json:"lastError"`
	AttemptErrors map[string]string `json:"attemptErrors,omitempty"` // Keyed by Unix timestamp
	FailedAt      time.Time         `json:"failedAt"`
}

func newFailureRecord(f blockproc.BlockProcessingFailure) FailureRecord {
	record := FailureRecord{
		ProcessingID: f.ProcessingID,
		Network:      f.Notification.Network,
		BlockHash:    f.Notification.Hash,
		BlockNumber:  f.Notification.Number,
		Attempts:     f.Attempts,
		FailedAt:     f.FailedAt,
	}

	if f.LastError != nil {
		record.LastError = f.LastError.Error()
	}

	if len(f.AttemptErrors) > 0 {
		record.AttemptErrors = make(map[string]string, len(f.AttemptErrors))
		for ts, err := range f.AttemptErrors {
			if err != nil {
				record.AttemptErrors[strconv.FormatInt(ts, 10)] = err.Error()
			}
		}
	}

	return record
}

// failure converts the record back into its domain form. Errors only keep
// their messages.
func (r FailureRecord) failure() blockproc.BlockProcessingFailure {
	f := blockproc.BlockProcessingFailure{
		ProcessingID: r.ProcessingID,
		FailedAt:     r.FailedAt,
		Attempts:     r.Attempts,
		Notification: blockproc.BlockNotification{
			Network: r.Network,
			Hash:    r.BlockHash,
			Number:  r.BlockNumber,
		},
	}

	if r.LastError != "" {
		f.LastError = errors.New(r.LastError)
	}

	if len(r.AttemptErrors) > 0 {
		f.AttemptErrors = make(map[int64]error, len(r.AttemptErrors))
		for ts, msg := range r.AttemptErrors {
			unix, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				continue
			}
			f.AttemptErrors[unix] = errors.New(msg)
		}
	}

	return f
}

// NotifyBlockProcessingFailure pushes the failure at the head of the
// network's failure list and trims the list to the configured size.
func (c *client) NotifyBlockProcessingFailure(ctx context.Context, failure blockproc.BlockProcessingFailure) error {
	payload, err := json.Marshal(newFailureRecord(failure))
	if err != nil {
		return err
	}

	key := blockprocFailuresKey(failure.Notification.Network)

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, c.maxFailures-1)
		return nil
	})

	return err
}

// RecentFailures returns up to limit failures of network, newest first.
func (c *client) RecentFailures(ctx context.Context, network string, limit int64) ([]blockproc.BlockProcessingFailure, error) {
	if limit <= 0 {
		return nil, nil
	}

	values, err := c.conn.LRange(ctx, blockprocFailuresKey(network), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	failures := make([]blockproc.BlockProcessingFailure, 0, len(values))
	for _, v := range values {
		var record FailureRecord
		if err := json.Unmarshal([]byte(v), &record); err != nil {
			return nil, fmt.Errorf("decode failure record: %w", err)
		}

		failures = append(failures, record.failure())
	}

	return failures, nil
}

var _ blockproc.BlockProcessingFailureNotifier = (*client)(nil)
