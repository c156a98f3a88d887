// Package chainstream follows a single network and emits its block headers in
// height order, resuming from the last committed checkpoint.
package chainstream

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/resilience/retry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const headerChannelBufferSize = 16

// Service streams block headers of one network.
type Service interface {
	// Start resolves the start height and begins streaming. The returned
	// channel is closed once the stream stops.
	//
	// Returns ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) (<-chan BlockHeader, error)

	// Commit records header as fully handled.
	Commit(ctx context.Context, header BlockHeader) error

	// Close stops the stream and waits for it to drain.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	network           string
	chain             Blockchain
	checkpointStorage CheckpointStorage
	startHeight       *uint64
	retry             retry.Retry
	onDispatchFailure dispatchFailureHandler
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) (<-chan BlockHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	from, err := s.resolveStartHeight(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	eventsCh, err := s.chain.Subscribe(ctx, from)
	if err != nil {
		cancel()
		return nil, err
	}

	var (
		headersCh = make(chan BlockHeader, headerChannelBufferSize)
		done      = make(chan struct{})
	)

	go func() {
		defer close(done)
		s.dispatch(ctx, eventsCh, headersCh)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true

	return headersCh, nil
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

type config struct {
	checkpointStorage CheckpointStorage
	startHeight       *uint64
	retry             retry.Retry
	onDispatchFailure dispatchFailureHandler
}

// Option configures the chainstream service.
type Option func(*config)

// New creates a chainstream service for network backed by chain.
//
// Defaults: no checkpoint persistence, start at the chain head, failed
// headers re-fetched until they load or ctx is done, failures logged.
func New(network string, chain Blockchain, opts ...Option) *service {
	cfg := config{
		checkpointStorage: nopCheckpoint{},
		retry:             retry.New(
			retry.WithAttempts(0),
			retry.WithDelay(500*time.Millisecond),
			retry.WithMaxDelay(30*time.Second),
		),
		onDispatchFailure: defaultOnDispatchFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		network:           network,
		chain:             chain,
		checkpointStorage: cfg.checkpointStorage,
		startHeight:       cfg.startHeight,
		retry:             cfg.retry,
		onDispatchFailure: cfg.onDispatchFailure,
	}
}

// WithCheckpointStorage persists progress in cs.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithStartHeight sets the first height to stream when no checkpoint exists.
func WithStartHeight(height uint64) Option {
	return func(c *config) {
		c.startHeight = &height
	}
}

// WithRetry sets the policy used to re-fetch headers whose event carried an
// error. With a bounded policy, exhausting it ends the stream at that height.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithDispatchFailureHandler replaces the handler invoked for the height the
// stream stopped at.
func WithDispatchFailureHandler(f func(ctx context.Context, failure HeaderDispatchFailure)) Option {
	return func(c *config) {
		c.onDispatchFailure = f
	}
}
