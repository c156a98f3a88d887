package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gabapcia/chainindex/internal/explorer"
	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// errInvalidPagination is returned by parsePageRequest for non-numeric values.
var errInvalidPagination = errors.New("invalid pagination parameters")

// parsePageRequest reads limit and offset from the query string. Missing
// values are left at zero so the explorer applies its defaults.
func parsePageRequest(r *http.Request) (explorer.PageRequest, error) {
	var (
		req   explorer.PageRequest
		query = r.URL.Query()
	)

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, errInvalidPagination
		}
		req.Limit = limit
	}

	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return req, errInvalidPagination
		}
		req.Offset = offset
	}

	return req, nil
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	txs, page, err := s.explorer.Transactions(r.Context(), req)
	if err != nil {
		logger.Error(r.Context(), "failed to list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	resp := transactionsResponse{
		Transactions: make([]transactionResponse, 0, len(txs)),
		Pagination:   newPaginationResponse(page),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, newTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	tx, err := s.explorer.Transaction(r.Context(), hash)
	if err != nil {
		if errors.Is(err, explorer.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}

		logger.Error(r.Context(), "failed to fetch transaction", "tx.hash", hash, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch transaction")
		return
	}

	writeJSON(w, http.StatusOK, newTransactionResponse(tx))
}

func (s *Server) listBlocks(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	blocks, page, err := s.explorer.Blocks(r.Context(), req)
	if err != nil {
		logger.Error(r.Context(), "failed to list blocks", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch blocks")
		return
	}

	resp := blocksResponse{
		Blocks:     make([]blockResponse, 0, len(blocks)),
		Pagination: newPaginationResponse(page),
	}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, newBlockResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getBlock(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid block number")
		return
	}

	block, err := s.explorer.Block(r.Context(), number)
	if err != nil {
		if errors.Is(err, explorer.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Block not found")
			return
		}

		logger.Error(r.Context(), "failed to fetch block", "block.number", number, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch block")
		return
	}

	writeJSON(w, http.StatusOK, newBlockResponse(block))
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.explorer.Stats(r.Context())
	if err != nil {
		logger.Error(r.Context(), "failed to fetch stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	writeJSON(w, http.StatusOK, newStatsResponse(stats))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
