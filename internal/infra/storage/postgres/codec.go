package postgres

import (
	"fmt"
	"math/big"

	"github.com/gabapcia/chainindex/internal/blockproc"

	"github.com/jackc/pgx/v5/pgtype"
)

// numeric encodes v as an integral NUMERIC. Nil is stored as zero.
func numeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		v = new(big.Int)
	}

	return pgtype.Numeric{Int: v, Exp: 0, Valid: true}
}

// parseNumeric decodes a NUMERIC column selected as text.
func parseNumeric(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid numeric value %q", s)
	}

	return v, nil
}

// statusValue maps a status to the nullable status column.
func statusValue(s blockproc.TxStatus) *int16 {
	var v int16
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

func statusFromValue(v *int16) blockproc.TxStatus {
	switch {
	case v == nil:
		return blockproc.StatusUnknown
	case *v == 1:
		return blockproc.StatusSuccess
	case *v == 0:
		return blockproc.StatusFailure
	default:
		return blockproc.StatusUnknown
	}
}
