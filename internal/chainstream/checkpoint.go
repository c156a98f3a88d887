package chainstream

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists the height of the last block fully handled on
// each network, so the stream can resume after a restart.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the latest checkpoint for network,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, network string, height uint64) error

	// LoadLatestCheckpoint returns the latest height saved for network, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error)
}

// Commit records header as fully handled. The next Start resumes right after it.
func (s *service) Commit(ctx context.Context, header BlockHeader) error {
	return s.checkpointStorage.SaveCheckpoint(ctx, s.network, header.Number)
}

// resolveStartHeight picks where the subscription begins: right after the
// checkpoint, else the configured start height, else the chain head (nil).
func (s *service) resolveStartHeight(ctx context.Context) (*uint64, error) {
	checkpoint, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.network)
	switch {
	case err == nil:
		next := checkpoint + 1
		return &next, nil
	case errors.Is(err, ErrNoCheckpointFound):
		return s.startHeight, nil
	default:
		return nil, err
	}
}

// nopCheckpoint stores nothing and never finds a checkpoint.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context, _ string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
