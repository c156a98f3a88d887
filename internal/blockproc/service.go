// Package blockproc indexes blocks and their transactions.
//
// A Processor drives one block notification through the ingestion sequence:
// store the block row, fetch the full block, enrich and store every
// transaction, then reconcile the block's transaction count. The Service
// feeds it the headers streamed by chainstream, one block at a time, and
// re-delivers a block whose processing failed.
package blockproc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/chainindex/internal/chainstream"
	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainindex/internal/pkg/validator"
	"github.com/gabapcia/chainindex/internal/pkg/x/chflow"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service runs the indexing pipeline.
type Service interface {
	// Start begins consuming the header stream in the background.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Close stops the pipeline and waits for the block in flight to settle.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	chainstream     chainstream.Service
	processor       Processor
	retry           retry.Retry
	failureNotifier BlockProcessingFailureNotifier
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	headersCh, err := s.chainstream.Start(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.consume(ctx, headersCh)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
		s.chainstream.Close()
	}
	s.isStarted = true

	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// consume handles headers one at a time and commits each one once it is
// settled, either indexed or reported as failed.
func (s *service) consume(ctx context.Context, headersCh <-chan chainstream.BlockHeader) {
	for {
		header, ok := chflow.Receive(ctx, headersCh)
		if !ok {
			if ctx.Err() == nil {
				logger.Warn(ctx, "header stream ended, a restart resumes after the last checkpoint")
			}
			return
		}

		s.handle(ctx, notificationFromHeader(header))

		// A block interrupted by shutdown is not committed so it is picked up again.
		if ctx.Err() != nil {
			return
		}

		if err := s.chainstream.Commit(ctx, header); err != nil {
			logger.Error(ctx, "failed to commit checkpoint",
				"block.network", header.Network,
				"block.number", header.Number,
				"error", err,
			)
		}
	}
}

// handle processes n, re-delivering it while the processor reports a
// per-block failure. Invalid notifications are not retried.
func (s *service) handle(ctx context.Context, n BlockNotification) {
	state := newBlockProcessingState(n)

	err := s.retry.Execute(ctx, func() error {
		state.recordAttempt()

		_, err := s.processor.Process(ctx, n)
		if err == nil {
			return nil
		}

		state.recordAttemptFailure(err)
		if errors.Is(err, validator.ErrValidationFailed) {
			return retry.Permanent(err)
		}

		return err
	})
	if err == nil {
		state.finalizeWithSuccess()
		return
	}

	if ctx.Err() != nil {
		return
	}

	state.finalizeWithFailure(err)
	failure := state.asFailure()

	logger.Error(ctx, "giving up on block",
		"block.network", n.Network,
		"block.hash", n.Hash,
		"block.number", n.Number,
		"processing.id", failure.ProcessingID,
		"processing.attempts", failure.Attempts,
		"error", err,
	)

	if err := s.failureNotifier.NotifyBlockProcessingFailure(ctx, failure); err != nil {
		logger.Error(ctx, "failed to report block processing failure",
			"block.hash", n.Hash,
			"processing.id", failure.ProcessingID,
			"error", err,
		)
	}
}

func notificationFromHeader(h chainstream.BlockHeader) BlockNotification {
	return BlockNotification{
		Network:    h.Network,
		Hash:       h.Hash,
		Number:     h.Number,
		Timestamp:  h.Timestamp,
		ParentHash: h.ParentHash,
		GasUsed:    h.GasUsed,
		GasLimit:   h.GasLimit,
	}
}

type serviceConfig struct {
	retry           retry.Retry
	failureNotifier BlockProcessingFailureNotifier
}

// ServiceOption configures the blockproc Service.
type ServiceOption func(*serviceConfig)

// NewService creates the pipeline service.
//
// By default a failed block is attempted three times with exponential
// backoff and final failures are only logged.
func NewService(stream chainstream.Service, processor Processor, opts ...ServiceOption) *service {
	cfg := serviceConfig{
		retry:           retry.New(retry.WithDelay(time.Second), retry.WithMaxDelay(30*time.Second)),
		failureNotifier: nopFailureNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chainstream:     stream,
		processor:       processor,
		retry:           cfg.retry,
		failureNotifier: cfg.failureNotifier,
	}
}

// WithRetry sets the re-delivery policy for blocks that fail to process.
func WithRetry(r retry.Retry) ServiceOption {
	return func(c *serviceConfig) {
		c.retry = r
	}
}

// WithFailureNotifier reports blocks that exhausted their attempts to n.
func WithFailureNotifier(n BlockProcessingFailureNotifier) ServiceOption {
	return func(c *serviceConfig) {
		c.failureNotifier = n
	}
}
