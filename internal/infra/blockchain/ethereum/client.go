// Package ethereum reads blocks, headers and receipts from Ethereum-compatible
// nodes over JSON-RPC. The client serves both the header stream and the block
// processor.
package ethereum

import (
	"context"
	"time"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/chainstream"
	"github.com/gabapcia/chainindex/internal/pkg/transport/jsonrpc"
)

const (
	// averageBlockTime is the default interval between two polls for new blocks.
	averageBlockTime = 12 * time.Second

	// headerEventBufferSize bounds how far polling may run ahead of the consumer.
	headerEventBufferSize = 64

	defaultCallTimeout = 10 * time.Second
)

// client talks to an Ethereum node through a JSON-RPC connection.
type client struct {
	conn         jsonrpc.Client
	pollInterval time.Duration
	callTimeout  time.Duration // bounds header and head-height lookups
}

var (
	_ chainstream.Blockchain  = (*client)(nil)
	_ blockproc.Blockchain    = (*client)(nil)
	_ blockproc.HeaderFetcher = (*client)(nil)
)

// Option configures the Ethereum client.
type Option func(*client)

// WithPollInterval sets how often Subscribe asks the node for new blocks.
//
// Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		c.pollInterval = d
	}
}

// WithCallTimeout bounds each header and head-height lookup, including the
// re-fetches of the header stream.
//
// Default: 10 seconds.
func WithCallTimeout(d time.Duration) Option {
	return func(c *client) {
		c.callTimeout = d
	}
}

// NewClient creates an Ethereum client over conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:         conn,
		pollInterval: averageBlockTime,
		callTimeout:  defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}
