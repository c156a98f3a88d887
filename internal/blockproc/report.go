package blockproc

import "context"

// BlockProcessingFailureNotifier is told about blocks the service gave up on.
//
// Implementations typically persist the failure so the block can be
// re-indexed later with the index-block command.
type BlockProcessingFailureNotifier interface {
	// NotifyBlockProcessingFailure receives the final failure of a block.
	// A non-nil error means the notification itself failed.
	NotifyBlockProcessingFailure(ctx context.Context, failure BlockProcessingFailure) error
}

// nopFailureNotifier drops every failure. The service logs them regardless.
type nopFailureNotifier struct{}

func (nopFailureNotifier) NotifyBlockProcessingFailure(context.Context, BlockProcessingFailure) error {
	return nil
}
