package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/chainindex/internal/blockproc"
	"github.com/gabapcia/chainindex/internal/pkg/transport/jsonrpc"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// receiptResponse holds the receipt fields the indexer stores.
// Status is absent on receipts that predate the Byzantium fork.
type receiptResponse struct {
	TransactionHash common.Hash     `json:"transactionHash"`
	GasUsed         *hexutil.Big    `json:"gasUsed"`
	Status          *hexutil.Uint64 `json:"status"`
}

func (r receiptResponse) toReceipt() blockproc.Receipt {
	status := blockproc.StatusUnknown
	if r.Status != nil {
		switch *r.Status {
		case 0:
			status = blockproc.StatusFailure
		case 1:
			status = blockproc.StatusSuccess
		}
	}

	return blockproc.Receipt{
		TransactionHash: hashString(r.TransactionHash),
		GasUsed:         bigOrNil(r.GasUsed),
		Status:          status,
	}
}

// GetTransactionReceipt implements blockproc.Blockchain. It returns
// blockproc.ErrReceiptNotFound for pending or unknown transactions.
func (c *client) GetTransactionReceipt(ctx context.Context, hash string) (blockproc.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return blockproc.Receipt{}, err
	}

	if jsonrpc.IsNull(data) {
		return blockproc.Receipt{}, fmt.Errorf("%w: %s", blockproc.ErrReceiptNotFound, hash)
	}

	var resp receiptResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return blockproc.Receipt{}, err
	}

	return resp.toReceipt(), nil
}
