package blockproc

import (
	"context"
	"sync"
)

// memoryStore is a conflict-free Store backed by maps.
type memoryStore struct {
	mu           sync.Mutex
	blocks       map[string]Block
	transactions map[string]Transaction
	txInsertErr  map[string]error
}

var _ Store = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		blocks:       make(map[string]Block),
		transactions: make(map[string]Transaction),
		txInsertErr:  make(map[string]error),
	}
}

func (m *memoryStore) InsertBlock(_ context.Context, block Block) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blocks[block.Hash]; ok {
		return false, nil
	}

	m.blocks[block.Hash] = block
	return true, nil
}

func (m *memoryStore) InsertTransaction(_ context.Context, tx Transaction) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.txInsertErr[tx.Hash]; ok {
		return false, err
	}

	if _, ok := m.transactions[tx.Hash]; ok {
		return false, nil
	}

	m.transactions[tx.Hash] = tx
	return true, nil
}

func (m *memoryStore) UpdateBlockTransactionCount(_ context.Context, hash string, count uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	block, ok := m.blocks[hash]
	if !ok {
		return nil
	}

	block.TransactionCount = count
	m.blocks[hash] = block
	return nil
}

func (m *memoryStore) transactionsOf(blockHash string) []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	var txs []Transaction
	for _, tx := range m.transactions {
		if tx.BlockHash == blockHash {
			txs = append(txs, tx)
		}
	}

	return txs
}

func (m *memoryStore) block(hash string) (Block, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	block, ok := m.blocks[hash]
	return block, ok
}
