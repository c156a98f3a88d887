package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/chainstream"
	"github.com/gabapcia/chainindex/internal/pkg/logger"
	"github.com/gabapcia/chainindex/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// headerResponse holds the header fields of an eth_getBlockBy* result.
	headerResponse struct {
		Hash       common.Hash    `json:"hash"`
		Number     hexutil.Uint64 `json:"number"`
		Timestamp  hexutil.Uint64 `json:"timestamp"`
		ParentHash common.Hash    `json:"parentHash"`
		GasUsed    *hexutil.Big   `json:"gasUsed"`
		GasLimit   *hexutil.Big   `json:"gasLimit"`
	}

	// blockResponse is an eth_getBlockByHash result requested with full
	// transactions. Entries are decoded one by one so a malformed entry does
	// not discard the whole block.
	blockResponse struct {
		headerResponse
		Transactions []json.RawMessage `json:"transactions"`
	}

	// transactionResponse is a transaction object as embedded in a block.
	transactionResponse struct {
		Hash             *common.Hash    `json:"hash"`
		From             *common.Address `json:"from"`
		To               *common.Address `json:"to"`
		Value            *hexutil.Big    `json:"value"`
		GasPrice         *hexutil.Big    `json:"gasPrice"`
		Gas              *hexutil.Big    `json:"gas"`
		Input            *hexutil.Bytes  `json:"input"`
		Nonce            *hexutil.Uint64 `json:"nonce"`
		TransactionIndex *hexutil.Uint64 `json:"transactionIndex"`
	}
)

func (h headerResponse) toNotification() blockproc.BlockNotification {
	return blockproc.BlockNotification{
		Hash:       hashString(h.Hash),
		Number:     uint64(h.Number),
		Timestamp:  uint64(h.Timestamp),
		ParentHash: hashString(h.ParentHash),
		GasUsed:    bigOrNil(h.GasUsed),
		GasLimit:   bigOrNil(h.GasLimit),
	}
}

func (h headerResponse) toBlockHeader() chainstream.BlockHeader {
	return chainstream.BlockHeader{
		Hash:       hashString(h.Hash),
		Number:     uint64(h.Number),
		Timestamp:  uint64(h.Timestamp),
		ParentHash: hashString(h.ParentHash),
		GasUsed:    bigOrNil(h.GasUsed),
		GasLimit:   bigOrNil(h.GasLimit),
	}
}

func (t transactionResponse) toBody() *blockproc.TransactionBody {
	body := &blockproc.TransactionBody{
		Value:    bigOrNil(t.Value),
		GasPrice: bigOrNil(t.GasPrice),
		Gas:      bigOrNil(t.Gas),
	}

	if t.Hash != nil {
		body.Hash = hashString(*t.Hash)
	}

	if t.From != nil {
		body.From = addressString(*t.From)
	}

	if t.To != nil {
		to := addressString(*t.To)
		body.To = &to
	}

	if t.Input != nil {
		body.Input = []byte(*t.Input)
	}

	if t.Nonce != nil {
		nonce := uint64(*t.Nonce)
		body.Nonce = &nonce
	}

	if t.TransactionIndex != nil {
		index := uint64(*t.TransactionIndex)
		body.TransactionIndex = &index
	}

	return body
}

// errMissingSender marks a transaction object without a from address.
var errMissingSender = errors.New("transaction object has no from address")

// decodeTransactionEntry decodes one element of a block's transaction list.
// A bare JSON string is a hash-only entry. An element that cannot be decoded,
// or an object without a sender, yields an entry without body.
func decodeTransactionEntry(raw json.RawMessage) (blockproc.TransactionEntry, error) {
	var hash string
	if err := json.Unmarshal(raw, &hash); err == nil {
		return blockproc.TransactionEntry{Hash: hash}, nil
	}

	var tx transactionResponse
	if err := json.Unmarshal(raw, &tx); err != nil {
		return blockproc.TransactionEntry{}, err
	}

	body := tx.toBody()
	if tx.From == nil {
		return blockproc.TransactionEntry{Hash: body.Hash}, errMissingSender
	}

	return blockproc.TransactionEntry{Hash: body.Hash, Body: body}, nil
}

// GetBlockByHash implements blockproc.Blockchain. It returns
// blockproc.ErrBlockNotFound when the node does not know the block.
func (c *client) GetBlockByHash(ctx context.Context, hash string) (blockproc.FullBlock, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByHash", hash, true)
	if err != nil {
		return blockproc.FullBlock{}, err
	}

	if jsonrpc.IsNull(data) {
		return blockproc.FullBlock{}, fmt.Errorf("%w: %s", blockproc.ErrBlockNotFound, hash)
	}

	var resp blockResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return blockproc.FullBlock{}, err
	}

	block := blockproc.FullBlock{
		Hash:         hashString(resp.Hash),
		Number:       uint64(resp.Number),
		Transactions: make([]blockproc.TransactionEntry, len(resp.Transactions)),
	}

	for i, raw := range resp.Transactions {
		entry, err := decodeTransactionEntry(raw)
		if err != nil {
			logger.Warn(ctx, "undecodable transaction entry",
				"block.hash", hash,
				"tx.position", i,
				"error", err,
			)
		}

		block.Transactions[i] = entry
	}

	return block, nil
}

// GetHeaderByHash implements blockproc.HeaderFetcher.
func (c *client) GetHeaderByHash(ctx context.Context, hash string) (blockproc.BlockNotification, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByHash", hash, false)
	if err != nil {
		return blockproc.BlockNotification{}, err
	}

	if jsonrpc.IsNull(data) {
		return blockproc.BlockNotification{}, fmt.Errorf("%w: %s", blockproc.ErrBlockNotFound, hash)
	}

	var resp headerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return blockproc.BlockNotification{}, err
	}

	return resp.toNotification(), nil
}

// HeaderByHeight implements chainstream.Blockchain.
func (c *client) HeaderByHeight(ctx context.Context, height uint64) (chainstream.BlockHeader, error) {
	ctx, cancel := c.withCallTimeout(ctx)
	defer cancel()

	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", hexutil.Uint64(height), false)
	if err != nil {
		return chainstream.BlockHeader{}, err
	}

	if jsonrpc.IsNull(data) {
		return chainstream.BlockHeader{}, fmt.Errorf("%w: height %d", blockproc.ErrBlockNotFound, height)
	}

	var resp headerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return chainstream.BlockHeader{}, err
	}

	return resp.toBlockHeader(), nil
}

func hashString(h common.Hash) string {
	return h.Hex()
}

// addressString renders a in lower case, as nodes return it.
func addressString(a common.Address) string {
	return hexutil.Encode(a.Bytes())
}

func bigOrNil(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}

	return v.ToInt()
}
