package investmock

import (
	"context"
	"errors"
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/investment"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("investmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, inv *domain.Investment) error
	SaveFn             func(ctx context.Context, inv *domain.Investment) error
	SumByLoanIDFn      func(ctx context.Context, loanID uint64) (float64, error)
	ListByInvestorIDFn func(ctx context.Context, investorID string) ([]domain.Investment, error)
	ListMaturedFn      func(ctx context.Context, investorID string, asOf time.Time) ([]domain.Investment, error)
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}
func (m *Repo) SumByLoanID(ctx context.Context, loanID uint64) (float64, error) {
	if m.SumByLoanIDFn != nil {
		return m.SumByLoanIDFn(ctx, loanID)
	}
	return 0, errUnimplemented
}
func (m *Repo) ListByInvestorID(ctx context.Context, investorID string) ([]domain.Investment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorID)
	}
	return nil, errUnimplemented
}
func (m *Repo) ListMatured(ctx context.Context, investorID string, asOf time.Time) ([]domain.Investment, error) {
	if m.ListMaturedFn != nil {
		return m.ListMaturedFn(ctx, investorID, asOf)
	}
	return nil, errUnimplemented
}
