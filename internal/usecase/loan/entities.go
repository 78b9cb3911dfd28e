package loan

import (
	"errors"
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
)

// ErrPaymentIncomplete means the gateway has not (yet) settled the checkout.
var ErrPaymentIncomplete = errors.New("payment is incomplete")

type CreateLoanInput struct {
	BorrowerID string
	Amount     float64
	TermMonths int
	Frequency  domain.Frequency
	Purpose    string
}

type RepaymentCheckoutInput struct {
	BorrowerID  string
	LoanID      string
	RepaymentID string
}

type ConfirmRepaymentInput struct {
	BorrowerID  string
	LoanID      string
	RepaymentID string
	PaymentID   string
}

type LoanDTO struct {
	LoanID          string           `json:"loan_id"`
	BorrowerID      string           `json:"borrower_id"`
	Amount          float64          `json:"amount"`
	TermMonths      int              `json:"term_months"`
	Frequency       domain.Frequency `json:"payment_frequency"`
	InterestRate    float64          `json:"interest_rate"`
	TotalPayable    float64          `json:"total_payable"`
	DisbursedAmount float64          `json:"disbursed_amount"`
	Purpose         string           `json:"loan_purpose"`
	Status          string           `json:"status"`
	IsFulfilled     bool             `json:"is_fulfilled"`
	FundedAmount    float64          `json:"funded_amount"`
	RemainingAmount float64          `json:"remaining_amount"`
	CreatedAt       time.Time        `json:"created_at"`
}

type InstallmentDTO struct {
	LoanID            string     `json:"loan_id"`
	RepaymentID       string     `json:"repayment_id"`
	InstallmentNumber int        `json:"installment_number"`
	DueDate           *time.Time `json:"due_date"`
	PaymentStatus     string     `json:"payment_status"`
	AmountPaid        float64    `json:"amount_paid"`
	AmountDue         float64    `json:"amount_due"`
	Notification      string     `json:"notification,omitempty"`
	IsPaymentEnabled  bool       `json:"is_payment_enabled"`
}

type CheckoutDTO struct {
	PaymentID string  `json:"payment_id"`
	URL       string  `json:"url"`
	Amount    float64 `json:"amount"`
}

func toLoanDTO(l *domain.Loan, funded float64) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		Amount:          l.Amount,
		TermMonths:      l.TermMonths,
		Frequency:       l.Frequency,
		InterestRate:    l.InterestRate,
		TotalPayable:    l.TotalPayable,
		DisbursedAmount: l.DisbursedAmount,
		Purpose:         l.Purpose,
		Status:          string(l.Status),
		IsFulfilled:     l.IsFulfilled,
		FundedAmount:    funded,
		RemainingAmount: domain.Round2(l.Amount - funded),
		CreatedAt:       l.CreatedAt,
	}
}

func toInstallmentDTO(loanID string, ri *domain.RepaymentInstallment, ev domain.Evaluation) InstallmentDTO {
	dto := InstallmentDTO{
		LoanID:            loanID,
		RepaymentID:       ri.RepaymentID,
		InstallmentNumber: ri.InstallmentNumber,
		DueDate:           ri.DueDate,
		PaymentStatus:     string(ev.PaymentStatus),
		AmountPaid:        ri.AmountPaid,
		AmountDue:         ev.AmountDue,
		IsPaymentEnabled:  ev.PaymentEnabled,
	}
	if ev.DueSoon {
		dto.Notification = "Due in less than 15 days"
	}
	return dto
}
