package wallet

import "context"

type BalanceRepository interface {
	Create(ctx context.Context, b *Balance) error
	Save(ctx context.Context, b *Balance) error
	GetByUser(ctx context.Context, userID string, role Role) (*Balance, error)
	// GetByUserForUpdate locks the balance row for the rest of the enclosing
	// transaction so concurrent debits serialize.
	GetByUserForUpdate(ctx context.Context, userID string, role Role) (*Balance, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByExternalPaymentID(ctx context.Context, externalID string) (*Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]Transaction, error)
}
