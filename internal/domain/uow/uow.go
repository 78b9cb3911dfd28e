package uow

import (
	"context"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/investment"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
)

// Repos bundles every repository bound to one database transaction.
type Repos struct {
	Loans        loan.Repository
	Repayments   loan.RepaymentRepository
	Investments  investment.Repository
	Balances     wallet.BalanceRepository
	Transactions wallet.TransactionRepository
}

type UnitOfWork interface {
	// WithinTx runs fn in a single transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. This is the
	// per-loan serialization point for funding.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
