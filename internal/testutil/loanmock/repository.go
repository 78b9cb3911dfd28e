package loanmock

import (
	"context"
	"errors"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
)

// Ensure compile-time compliance
var (
	_ domain.Repository          = (*Repo)(nil)
	_ domain.RepaymentRepository = (*RepaymentRepo)(nil)
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.Loan) error
	SaveFn                    func(ctx context.Context, l *domain.Loan) error
	GetByIDFn                 func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByLoanIDFn             func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn    func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetOpenLoanByBorrowerIDFn func(ctx context.Context, borrowerID string) (*domain.Loan, error)
	ListByBorrowerIDFn        func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	ListUnfulfilledFn         func(ctx context.Context) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *Repo) GetOpenLoanByBorrowerID(ctx context.Context, borrowerID string) (*domain.Loan, error) {
	if m.GetOpenLoanByBorrowerIDFn != nil {
		return m.GetOpenLoanByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListUnfulfilled(ctx context.Context) ([]domain.Loan, error) {
	if m.ListUnfulfilledFn != nil {
		return m.ListUnfulfilledFn(ctx)
	}
	return nil, errUnimplemented
}

// RepaymentRepo is a function-backed mock for domain.RepaymentRepository.
type RepaymentRepo struct {
	CreateBatchFn         func(ctx context.Context, items []domain.RepaymentInstallment) error
	SaveFn                func(ctx context.Context, ri *domain.RepaymentInstallment) error
	GetByRepaymentIDFn    func(ctx context.Context, repaymentID string) (*domain.RepaymentInstallment, error)
	ListByLoanIDFn        func(ctx context.Context, loanID uint64) ([]domain.RepaymentInstallment, error)
	CountUnpaidByLoanIDFn func(ctx context.Context, loanID uint64) (int64, error)
}

func (m *RepaymentRepo) CreateBatch(ctx context.Context, items []domain.RepaymentInstallment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, items)
	}
	return nil
}
func (m *RepaymentRepo) Save(ctx context.Context, ri *domain.RepaymentInstallment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, ri)
	}
	return nil
}
func (m *RepaymentRepo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.RepaymentInstallment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, errUnimplemented
}
func (m *RepaymentRepo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.RepaymentInstallment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}
func (m *RepaymentRepo) CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	if m.CountUnpaidByLoanIDFn != nil {
		return m.CountUnpaidByLoanIDFn(ctx, loanID)
	}
	return 0, errUnimplemented
}
