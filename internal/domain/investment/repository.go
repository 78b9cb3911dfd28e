package investment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	Save(ctx context.Context, inv *Investment) error
	// SumByLoanID is the total capital committed to a loan so far. Callers
	// racing on the remaining amount must hold the loan row lock.
	SumByLoanID(ctx context.Context, loanID uint64) (float64, error)
	ListByInvestorID(ctx context.Context, investorID string) ([]Investment, error)
	ListMatured(ctx context.Context, investorID string, asOf time.Time) ([]Investment, error)
}
