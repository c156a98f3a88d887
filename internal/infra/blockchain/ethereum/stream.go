package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/chainindex/internal/chainstream"
	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// latestHeight returns the height of the most recent block known to the node.
func (c *client) latestHeight(ctx context.Context) (uint64, error) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var height hexutil.Uint64
	if err := json.Unmarshal(data, &height); err != nil {
		return 0, err
	}

	return uint64(height), nil
}

// pollNewHeaders emits one event per height from next up to the node's latest
// height and returns the height to start from on the next poll.
//
// A failure to read the latest height emits nothing. A failure to load one
// header is emitted as an event carrying the error, so the consumer decides
// whether to re-fetch it.
func (c *client) pollNewHeaders(ctx context.Context, next uint64, eventsCh chan<- chainstream.HeaderEvent) uint64 {
	latest, err := c.latestHeight(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn(ctx, "failed to read latest block height", "error", err)
		}
		return next
	}

	for ; next <= latest; next++ {
		header, err := c.HeaderByHeight(ctx, next)
		event := chainstream.HeaderEvent{
			Height: next,
			Header: header,
			Err:    err,
		}

		if !chflow.Send(ctx, eventsCh, event) {
			return next
		}
	}

	return next
}

// Subscribe implements chainstream.Blockchain by polling the node every poll
// interval. With a nil fromHeight it starts at the node's latest block.
// The returned channel is closed when ctx is done.
func (c *client) Subscribe(ctx context.Context, fromHeight *uint64) (<-chan chainstream.HeaderEvent, error) {
	var next uint64
	if fromHeight != nil {
		next = *fromHeight
	} else {
		latest, err := c.latestHeight(ctx)
		if err != nil {
			return nil, err
		}

		next = latest
	}

	eventsCh := make(chan chainstream.HeaderEvent, headerEventBufferSize)
	go func() {
		defer close(eventsCh)

		for {
			next = c.pollNewHeaders(ctx, next, eventsCh)

			if !chflow.Sleep(ctx, c.pollInterval) {
				return
			}
		}
	}()

	return eventsCh, nil
}
