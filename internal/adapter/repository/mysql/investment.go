package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	invDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) SumByLoanID(ctx context.Context, loanID uint64) (float64, error) {
	var total *float64
	res := r.db.WithContext(ctx).
		Model(&invDomain.Investment{}).
		Select("SUM(amount)").
		Where("loan_id = ?", loanID).
		Scan(&total)
	if res.Error != nil {
		return 0, res.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListMatured(ctx context.Context, investorID string, asOf time.Time) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ? AND status = ? AND closed_at <= ?", investorID, invDomain.StatusOpen, asOf).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
