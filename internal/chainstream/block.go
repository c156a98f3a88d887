package chainstream

import "math/big"

// BlockHeader is the header of a block observed on the chain.
type BlockHeader struct {
	Network    string   // Network the header was observed on
	Hash       string   // 0x-prefixed block hash
	Number     uint64   // Block height
	Timestamp  uint64   // Seconds since epoch
	ParentHash string   // Hash of the parent block
	GasUsed    *big.Int // Total gas used by the block
	GasLimit   *big.Int // Gas limit of the block
}

// HeaderEvent is emitted by a Blockchain subscription for every height it
// visits. Err is set when the header at Height could not be loaded.
type HeaderEvent struct {
	Height uint64
	Header BlockHeader
	Err    error
}
