package walletmock

import (
	"context"
	"errors"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
)

// Ensure compile-time compliance
var (
	_ domain.BalanceRepository     = (*BalanceRepo)(nil)
	_ domain.TransactionRepository = (*TransactionRepo)(nil)
)

var errUnimplemented = errors.New("walletmock: method not implemented")

// BalanceRepo is a function-backed mock for domain.BalanceRepository.
type BalanceRepo struct {
	CreateFn             func(ctx context.Context, b *domain.Balance) error
	SaveFn               func(ctx context.Context, b *domain.Balance) error
	GetByUserFn          func(ctx context.Context, userID string, role domain.Role) (*domain.Balance, error)
	GetByUserForUpdateFn func(ctx context.Context, userID string, role domain.Role) (*domain.Balance, error)
}

func (m *BalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *BalanceRepo) Save(ctx context.Context, b *domain.Balance) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
func (m *BalanceRepo) GetByUser(ctx context.Context, userID string, role domain.Role) (*domain.Balance, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(ctx, userID, role)
	}
	return nil, errUnimplemented
}
func (m *BalanceRepo) GetByUserForUpdate(ctx context.Context, userID string, role domain.Role) (*domain.Balance, error) {
	if m.GetByUserForUpdateFn != nil {
		return m.GetByUserForUpdateFn(ctx, userID, role)
	}
	return nil, errUnimplemented
}

// TransactionRepo is a function-backed mock for domain.TransactionRepository.
type TransactionRepo struct {
	CreateFn                 func(ctx context.Context, t *domain.Transaction) error
	GetByExternalPaymentIDFn func(ctx context.Context, externalID string) (*domain.Transaction, error)
	ListByUserIDFn           func(ctx context.Context, userID string) ([]domain.Transaction, error)
}

func (m *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *TransactionRepo) GetByExternalPaymentID(ctx context.Context, externalID string) (*domain.Transaction, error) {
	if m.GetByExternalPaymentIDFn != nil {
		return m.GetByExternalPaymentIDFn(ctx, externalID)
	}
	return nil, errUnimplemented
}
func (m *TransactionRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}
