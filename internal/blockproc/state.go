package blockproc

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// blockProcessingState tracks the attempts made for one block notification.
type blockProcessingState struct {
	processingID    string
	receivedAt      time.Time
	notification    BlockNotification
	attempts        uint8
	lastAttemptAt   *time.Time
	lastError       error
	attemptErrorLog map[int64]error
	finalized       bool
	finalizedAt     *time.Time
}

func newBlockProcessingState(n BlockNotification) blockProcessingState {
	return blockProcessingState{
		processingID:    uuid.Must(uuid.NewV7()).String(),
		receivedAt:      time.Now().UTC(),
		notification:    n,
		attemptErrorLog: make(map[int64]error),
	}
}

// recordAttempt counts a new attempt, saturating at 255. No-op once finalized.
func (s *blockProcessingState) recordAttempt() {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	if s.attempts < math.MaxUint8 {
		s.attempts++
	}
	s.lastAttemptAt = &now
}

// recordAttemptFailure stores err under the current Unix timestamp. No-op once finalized.
func (s *blockProcessingState) recordAttemptFailure(err error) {
	if s.finalized {
		return
	}

	s.lastError = err
	s.attemptErrorLog[time.Now().UTC().Unix()] = err
}

func (s *blockProcessingState) finalizeWithSuccess() {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	s.finalized = true
	s.finalizedAt = &now
	s.lastError = nil
}

func (s *blockProcessingState) finalizeWithFailure(err error) {
	if s.finalized {
		return
	}

	now := time.Now().UTC()

	s.finalized = true
	s.finalizedAt = &now
	s.lastError = err
}

// asFailure converts a state finalized with an error into a BlockProcessingFailure.
// Any other state yields the zero value.
func (s blockProcessingState) asFailure() BlockProcessingFailure {
	if !s.finalized || s.lastError == nil {
		return BlockProcessingFailure{}
	}

	return BlockProcessingFailure{
		ProcessingID:  s.processingID,
		FailedAt:      *s.finalizedAt,
		Attempts:      s.attempts,
		LastError:     s.lastError,
		AttemptErrors: s.attemptErrorLog,
		Notification:  s.notification,
	}
}
