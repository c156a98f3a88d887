package http

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/explorer"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// blockResponse is the JSON form of a block. Numbers that may exceed the
// JSON safe integer range are rendered as decimal strings.
type blockResponse struct {
	Hash             string `json:"hash"`
	Number           string `json:"number"`
	Timestamp        string `json:"timestamp"`
	ParentHash       string `json:"parentHash"`
	GasUsed          string `json:"gasUsed"`
	GasLimit         string `json:"gasLimit"`
	TransactionCount uint64 `json:"transactionCount"`
}

type transactionResponse struct {
	Hash             string  `json:"hash"`
	BlockNumber      string  `json:"blockNumber"`
	BlockHash        string  `json:"blockHash"`
	TransactionIndex uint64  `json:"transactionIndex"`
	From             string  `json:"from"`
	To               *string `json:"to"`
	Value            string  `json:"value"`
	GasPrice         string  `json:"gasPrice"`
	GasUsed          string  `json:"gasUsed"`
	GasLimit         string  `json:"gasLimit"`
	Input            string  `json:"input"`
	Nonce            uint64  `json:"nonce"`
	Timestamp        string  `json:"timestamp"`
	Status           *int    `json:"status"` // 1 success, 0 failure, null unknown
}

type paginationResponse struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type blocksResponse struct {
	Blocks     []blockResponse    `json:"blocks"`
	Pagination paginationResponse `json:"pagination"`
}

type transactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Pagination   paginationResponse    `json:"pagination"`
}

type statsResponse struct {
	TotalTransactions uint64         `json:"totalTransactions"`
	TotalBlocks       uint64         `json:"totalBlocks"`
	LatestBlock       *blockResponse `json:"latestBlock"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func decimal(n *big.Int) string {
	if n == nil {
		return "0"
	}

	return n.String()
}

func statusValue(s blockproc.TxStatus) *int {
	var v int
	switch s {
	case blockproc.StatusSuccess:
		v = 1
	case blockproc.StatusFailure:
		v = 0
	default:
		return nil
	}

	return &v
}

func newBlockResponse(b blockproc.Block) blockResponse {
	return blockResponse{
		Hash:             b.Hash,
		Number:           strconv.FormatUint(b.Number, 10),
		Timestamp:        strconv.FormatUint(b.Timestamp, 10),
		ParentHash:       b.ParentHash,
		GasUsed:          decimal(b.GasUsed),
		GasLimit:         decimal(b.GasLimit),
		TransactionCount: b.TransactionCount,
	}
}

func newTransactionResponse(tx blockproc.Transaction) transactionResponse {
	return transactionResponse{
		Hash:             tx.Hash,
		BlockNumber:      strconv.FormatUint(tx.BlockNumber, 10),
		BlockHash:        tx.BlockHash,
		TransactionIndex: tx.TransactionIndex,
		From:             tx.From,
		To:               tx.To,
		Value:            decimal(tx.Value),
		GasPrice:         decimal(tx.GasPrice),
		GasUsed:          decimal(tx.GasUsed),
		GasLimit:         decimal(tx.GasLimit),
		Input:            hexutil.Encode(tx.Input),
		Nonce:            tx.Nonce,
		Timestamp:        strconv.FormatUint(tx.Timestamp, 10),
		Status:           statusValue(tx.Status),
	}
}

func newPaginationResponse(p explorer.Page) paginationResponse {
	return paginationResponse{Limit: p.Limit, Offset: p.Offset, HasMore: p.HasMore}
}

func newStatsResponse(s explorer.Stats) statsResponse {
	resp := statsResponse{
		TotalTransactions: s.TotalTransactions,
		TotalBlocks:       s.TotalBlocks,
	}

	if s.LatestBlock != nil {
		latest := newBlockResponse(*s.LatestBlock)
		resp.LatestBlock = &latest
	}

	return resp
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
