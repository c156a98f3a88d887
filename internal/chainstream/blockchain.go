package chainstream

import (
	"context"

	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/x/chflow"
)

// Blockchain is a source of block headers.
type Blockchain interface {
	// HeaderByHeight returns the header of the block at height.
	HeaderByHeight(ctx context.Context, height uint64) (BlockHeader, error)

	// Subscribe emits one HeaderEvent per height, in increasing order,
	// starting at fromHeight, or at the current head when fromHeight is nil.
	// The channel is closed when ctx is done.
	Subscribe(ctx context.Context, fromHeight *uint64) (<-chan HeaderEvent, error)
}

// HeaderDispatchFailure describes a height whose header could not be loaded,
// even after retrying. The stream stops at that height. Errors holds the subscription error followed by the
// retry error.
type HeaderDispatchFailure struct {
	Network string
	Height  uint64
	Errors  []error
}

// dispatchFailureHandler is invoked for every height that is given up on.
type dispatchFailureHandler func(ctx context.Context, failure HeaderDispatchFailure)

func defaultOnDispatchFailure(ctx context.Context, failure HeaderDispatchFailure) {
	logger.Error(ctx, "block header dispatch failure, stopping stream",
		"block.network", failure.Network,
		"block.number", failure.Height,
		"block.errors", failure.Errors,
	)
}

// refetch re-fetches the header of a failed event. Retrying happens inline so
// headers keep leaving the stream in height order. A false result means the
// height could not be loaded and the stream must not move past it.
func (s *service) refetch(ctx context.Context, event HeaderEvent) (BlockHeader, bool) {
	var header BlockHeader
	err := s.retry.Execute(ctx, func() error {
		var err error
		header, err = s.chain.HeaderByHeight(ctx, event.Height)
		return err
	})
	if err == nil {
		return header, true
	}

	if ctx.Err() == nil {
		s.onDispatchFailure(ctx, HeaderDispatchFailure{
			Network: s.network,
			Height:  event.Height,
			Errors:  []error{event.Err, err},
		})
	}

	return BlockHeader{}, false
}

// dispatch forwards subscription events to out until eventsCh closes, ctx is
// done or a height is given up on, then closes out. Stopping at a missing
// height keeps every later checkpoint behind it, so a restart resumes there.
func (s *service) dispatch(ctx context.Context, eventsCh <-chan HeaderEvent, out chan<- BlockHeader) {
	defer close(out)

	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		header := event.Header
		if event.Err != nil {
			if header, ok = s.refetch(ctx, event); !ok {
				return
			}
		}

		header.Network = s.network
		if !chflow.Send(ctx, out, header) {
			return
		}
	}
}
