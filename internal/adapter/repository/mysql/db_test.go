package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
)

// --- SQLite-friendly schemas only for tests (no DECIMAL, no ENUM) ---

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	BorrowerID      string         `gorm:"size:32;column:borrower_id"`
	Amount          float64        `gorm:"column:amount"`
	TermMonths      int            `gorm:"column:term_months"`
	Frequency       string         `gorm:"column:frequency"`
	InterestRate    float64        `gorm:"column:interest_rate"`
	TotalPayable    float64        `gorm:"column:total_payable"`
	DisbursedAmount float64        `gorm:"column:disbursed_amount"`
	Purpose         string         `gorm:"column:purpose"`
	Status          string         `gorm:"type:text;column:status"`
	IsFulfilled     bool           `gorm:"column:is_fulfilled"`
	FulfilledAt     *time.Time     `gorm:"column:fulfilled_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	RepaymentID       string         `gorm:"size:32;column:repayment_id"`
	LoanID            uint64         `gorm:"column:loan_id"`
	InstallmentNumber int            `gorm:"column:installment_number"`
	DueDate           *time.Time     `gorm:"column:due_date"`
	AmountDue         float64        `gorm:"column:amount_due"`
	AmountPaid        float64        `gorm:"column:amount_paid"`
	PaymentStatus     string         `gorm:"type:text;column:payment_status"`
	LastEscalatedAt   *time.Time     `gorm:"column:last_escalated_at"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (repaymentSQLite) TableName() string { return "loan_repayment_schedules" }

type investmentSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	InvestmentID string         `gorm:"size:32;column:investment_id"`
	InvestorID   string         `gorm:"size:32;column:investor_id"`
	LoanID       uint64         `gorm:"column:loan_id"`
	Amount       float64        `gorm:"column:amount"`
	NetReturn    float64        `gorm:"column:net_return"`
	Status       string         `gorm:"type:text;column:status"`
	ClosedAt     time.Time      `gorm:"column:closed_at"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

type balanceSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	UserID         string    `gorm:"size:32;column:user_id"`
	Role           string    `gorm:"type:text;column:role"`
	AccountBalance float64   `gorm:"column:account_balance"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (balanceSQLite) TableName() string { return "balances" }

type transactionSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	TransactionID     string         `gorm:"size:32;column:transaction_id"`
	UserID            string         `gorm:"size:32;column:user_id"`
	Type              string         `gorm:"column:transaction_type"`
	Amount            float64        `gorm:"column:amount"`
	ExternalPaymentID *string        `gorm:"column:external_payment_id"`
	Description       string         `gorm:"column:description"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{}, &repaymentSQLite{}, &investmentSQLite{},
		&balanceSQLite{}, &transactionSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, borrowerID string) *loanDomain.Loan {
	plan := loanDomain.Price(1200, 12, loanDomain.FrequencyMonthly)
	return &loanDomain.Loan{
		LoanID:          loanID,
		BorrowerID:      borrowerID,
		Amount:          1200,
		TermMonths:      12,
		Frequency:       loanDomain.FrequencyMonthly,
		InterestRate:    plan.InterestRate,
		TotalPayable:    plan.TotalPayable,
		DisbursedAmount: loanDomain.DisbursedAmount(1200),
		Purpose:         "equipment",
		Status:          loanDomain.StatusProcessing,
	}
}
