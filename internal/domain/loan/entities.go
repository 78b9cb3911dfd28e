package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusApproved   Status = "approved"
	StatusRepaid     Status = "repaid"
	StatusDefaulted  Status = "defaulted"
)

// Open reports whether the loan still blocks the borrower from requesting
// another one (at most one open loan per borrower).
func (s Status) Open() bool { return s != StatusRepaid && s != StatusDefaulted }

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "3_monthly"
	FrequencyOneTime   Frequency = "one_time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentMissed  PaymentStatus = "missed"
)

var (
	ErrNotFound           = errors.New("loan not found")
	ErrDuplicateLoan      = errors.New("borrower already has an open loan")
	ErrAlreadyFulfilled   = errors.New("loan is already fulfilled")
	ErrExceedsRemaining   = errors.New("investment amount exceeds the remaining loan amount")
	ErrUnsupportedCadence = errors.New("unsupported number of installments")
	ErrDueDatesAssigned   = errors.New("due dates already assigned")
	ErrRepaymentNotFound  = errors.New("repayment not found")
	ErrRepaymentMismatch  = errors.New("repayment does not belong to this loan")
	ErrAlreadyPaid        = errors.New("installment is already paid")
)

type Loan struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID      string         `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	TermMonths      int            `gorm:"column:term_months" json:"term_months"`
	Frequency       Frequency      `gorm:"size:16" json:"payment_frequency"`
	InterestRate    float64        `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TotalPayable    float64        `gorm:"type:decimal(18,2)" json:"total_payable"`
	DisbursedAmount float64        `gorm:"type:decimal(18,2)" json:"disbursed_amount"`
	Purpose         string         `gorm:"type:text" json:"loan_purpose"`
	Status          Status         `gorm:"size:20;default:'pending'" json:"status"`
	IsFulfilled     bool           `gorm:"column:is_fulfilled;default:false" json:"is_fulfilled"`
	FulfilledAt     *time.Time     `gorm:"column:fulfilled_at" json:"fulfilled_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

type RepaymentInstallment struct {
	ID                uint64         `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID       string         `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID            uint64         `gorm:"column:loan_id;uniqueIndex:ux_repayments_loan_number,priority:1" json:"-"`
	InstallmentNumber int            `gorm:"column:installment_number;uniqueIndex:ux_repayments_loan_number,priority:2" json:"installment_number"`
	DueDate           *time.Time     `gorm:"column:due_date" json:"due_date"`
	AmountDue         float64        `gorm:"type:decimal(18,2)" json:"amount_due"`
	AmountPaid        float64        `gorm:"type:decimal(18,2);default:0" json:"amount_paid"`
	PaymentStatus     PaymentStatus  `gorm:"size:16;default:'pending'" json:"payment_status"`
	LastEscalatedAt   *time.Time     `gorm:"column:last_escalated_at" json:"-"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RepaymentInstallment) TableName() string { return "loan_repayment_schedules" }
