package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) CreateBatch(ctx context.Context, items []loanDomain.RepaymentInstallment) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *RepaymentRepository) Save(ctx context.Context, ri *loanDomain.RepaymentInstallment) error {
	return r.db.WithContext(ctx).Save(ri).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*loanDomain.RepaymentInstallment, error) {
	var out loanDomain.RepaymentInstallment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]loanDomain.RepaymentInstallment, error) {
	var out []loanDomain.RepaymentInstallment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) CountUnpaidByLoanID(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.RepaymentInstallment{}).
		Where("loan_id = ? AND payment_status <> ?", loanID, loanDomain.PaymentPaid).
		Count(&n)
	return n, res.Error
}
