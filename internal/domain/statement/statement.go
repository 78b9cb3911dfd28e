package statement

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrUnrecognizedFormat means no known statement layout matched.
	ErrUnrecognizedFormat = errors.New("no valid statement found in the document")
	// ErrNoTransactions means parsing succeeded but yielded nothing usable.
	ErrNoTransactions = errors.New("no valid transaction data found in the document")
)

// Record is one parsed bank-statement line: a dated, signed amount. Negative
// amounts are spending, positive amounts are payments/credits.
type Record struct {
	Date        time.Time
	Description string
	Amount      float64
}

// Parser is the external text-extraction collaborator that converts an
// uploaded statement document into an ordered transaction list. Its
// format-specific logic lives outside this core.
type Parser interface {
	Parse(ctx context.Context, document io.Reader) ([]Record, error)
}
