package blockproc

import (
	"math/big"
	"time"
)

// TxStatus is the execution outcome of a transaction as reported by its receipt.
type TxStatus uint8

const (
	// StatusUnknown means no receipt was available to confirm the outcome.
	StatusUnknown TxStatus = iota
	// StatusFailure means the receipt reported a reverted execution.
	StatusFailure
	// StatusSuccess means the receipt reported a successful execution.
	StatusSuccess
)

func (s TxStatus) String() string {
	switch s {
	case StatusFailure:
		return "failure"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// BlockNotification announces a block that is ready to be indexed.
// It carries header fields only.
type BlockNotification struct {
	Network    string   `validate:"required"`
	Hash       string   `validate:"required,blockhash"`
	Number     uint64   // Block height
	Timestamp  uint64   // Seconds since epoch
	ParentHash string   `validate:"omitempty,blockhash"`
	GasUsed    *big.Int // Nil is stored as zero
	GasLimit   *big.Int // Nil is stored as zero
}

// Block is the stored record of a block.
// TransactionCount is the only field that changes after creation.
type Block struct {
	Hash             string
	Number           uint64
	Timestamp        uint64
	ParentHash       string
	GasUsed          *big.Int
	GasLimit         *big.Int
	TransactionCount uint64
}

// BlockRef identifies the enclosing block of a transaction.
type BlockRef struct {
	Hash      string
	Number    uint64
	Timestamp uint64
}

// Ref returns the BlockRef of the block.
func (b Block) Ref() BlockRef {
	return BlockRef{Hash: b.Hash, Number: b.Number, Timestamp: b.Timestamp}
}

// TransactionBody is a transaction as returned inside a full block.
// Optional fields are nil when the node omitted them.
type TransactionBody struct {
	Hash             string
	From             string
	To               *string
	Value            *big.Int
	GasPrice         *big.Int
	Gas              *big.Int
	Input            []byte
	Nonce            *uint64
	TransactionIndex *uint64
}

// TransactionEntry is one element of a block's transaction list.
// Body is nil when the node returned a bare hash instead of an object.
type TransactionEntry struct {
	Hash string
	Body *TransactionBody
}

// FullBlock is a block fetched with its transaction bodies.
type FullBlock struct {
	Hash         string
	Number       uint64
	Transactions []TransactionEntry
}

// Receipt is the post-execution data of a transaction.
type Receipt struct {
	TransactionHash string
	GasUsed         *big.Int
	Status          TxStatus
}

// Transaction is the stored record of a transaction. It is written once and never updated.
type Transaction struct {
	Hash             string
	BlockNumber      uint64
	BlockHash        string
	TransactionIndex uint64
	From             string
	To               *string // Nil for contract creation
	Value            *big.Int
	GasPrice         *big.Int
	GasUsed          *big.Int
	GasLimit         *big.Int
	Input            []byte
	Nonce            uint64
	Timestamp        uint64
	Status           TxStatus
}

// Result summarizes one Process call.
type Result struct {
	Block            Block
	TransactionCount uint64 // Transactions accounted for in the block
	Skipped          int    // Hash-only or hashless entries
	NotPersisted     int    // Entries whose insert failed
	ReceiptsMissing  int    // Entries stored without receipt data
	CountReconciled  bool   // Whether the final count update succeeded
}

// BlockProcessingFailure describes a block the service gave up on after
// exhausting its attempts.
type BlockProcessingFailure struct {
	ProcessingID  string            // UUIDv7 of the processing cycle
	FailedAt      time.Time         // When the failure was finalized
	Attempts      uint8             // Number of attempts made
	LastError     error             // Error of the final attempt
	AttemptErrors map[int64]error   // Attempt errors keyed by Unix timestamp
	Notification  BlockNotification // The notification that could not be processed
}
