package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	walletDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
)

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) Create(ctx context.Context, b *walletDomain.Balance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BalanceRepository) Save(ctx context.Context, b *walletDomain.Balance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BalanceRepository) GetByUser(ctx context.Context, userID string, role walletDomain.Role) (*walletDomain.Balance, error) {
	var out walletDomain.Balance
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		First(&out)
	return &out, res.Error
}

// GetByUserForUpdate locks the balance row so concurrent debits serialize;
// only meaningful inside a transaction.
func (r *BalanceRepository) GetByUserForUpdate(ctx context.Context, userID string, role walletDomain.Role) (*walletDomain.Balance, error) {
	var out walletDomain.Balance
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND role = ?", userID, role).
		First(&out)
	return &out, res.Error
}

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *walletDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) GetByExternalPaymentID(ctx context.Context, externalID string) (*walletDomain.Transaction, error) {
	var out walletDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("external_payment_id = ?", externalID).
		First(&out)
	return &out, res.Error
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]walletDomain.Transaction, error) {
	var out []walletDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
