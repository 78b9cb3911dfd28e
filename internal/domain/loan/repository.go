package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the enclosing
	// transaction. Funding must go through this.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetOpenLoanByBorrowerID(ctx context.Context, borrowerID string) (*Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	ListUnfulfilled(ctx context.Context) ([]Loan, error)
}

type RepaymentRepository interface {
	CreateBatch(ctx context.Context, items []RepaymentInstallment) error
	Save(ctx context.Context, ri *RepaymentInstallment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*RepaymentInstallment, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]RepaymentInstallment, error)
	CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error)
}
