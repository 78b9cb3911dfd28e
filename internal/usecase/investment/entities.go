package investment

import (
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/investment"
)

type InvestInput struct {
	InvestorID string
	LoanID     string
	Amount     float64
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	InvestorID   string    `json:"investor_id"`
	LoanID       string    `json:"loan_id"`
	Amount       float64   `json:"amount"`
	NetReturn    float64   `json:"net_return"`
	InterestRate float64   `json:"interest_rate"`
	Status       string    `json:"status"`
	ClosedAt     time.Time `json:"closed_at"`
	CreatedAt    time.Time `json:"created_at"`

	Loan *LoanSummary `json:"loan,omitempty"`
}

// LoanSummary is the slice of loan data an investor sees on their holdings.
type LoanSummary struct {
	LoanID      string  `json:"loan_id"`
	Amount      float64 `json:"loan_amount"`
	Purpose     string  `json:"loan_purpose"`
	TermMonths  int     `json:"term_months"`
	IsFulfilled bool    `json:"is_fulfilled"`
}

type ExpectedReturnDTO struct {
	Amount       float64 `json:"amount"`
	NetReturn    float64 `json:"net_return"`
	InterestRate float64 `json:"interest_rate"`
}

type PurposeSlice struct {
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

type PortfolioEntry struct {
	Date         time.Time `json:"date"`
	Amount       float64   `json:"amount"`
	Purpose      string    `json:"loan_purpose"`
	InterestRate float64   `json:"interest_rate"`
	NetReturn    float64   `json:"net_return"`
	Realized     bool      `json:"realized"`
}

type PortfolioDTO struct {
	TotalInvested       float64                 `json:"total_invested"`
	TotalExpectedReturn float64                 `json:"total_expected_return"`
	TotalActualReturn   float64                 `json:"total_actual_return"`
	PortfolioValue      float64                 `json:"portfolio_value"`
	TotalLoans          int                     `json:"total_loans"`
	ByPurpose           map[string]PurposeSlice `json:"investments_by_loan_purpose"`
	History             []PortfolioEntry        `json:"investment_history"`
}

type ClosureDTO struct {
	InvestmentID   string    `json:"investment_id"`
	LoanID         string    `json:"loan_id"`
	AmountInvested float64   `json:"amount_invested"`
	NetReturn      float64   `json:"net_return"`
	TransactionID  string    `json:"transaction_id"`
	ClosedAt       time.Time `json:"actual_closure_date"`
	Status         string    `json:"status"`
}

func toInvestmentDTO(inv *domain.Investment, loanID string, rate float64) InvestmentDTO {
	return InvestmentDTO{
		InvestmentID: inv.InvestmentID,
		InvestorID:   inv.InvestorID,
		LoanID:       loanID,
		Amount:       inv.Amount,
		NetReturn:    inv.NetReturn,
		InterestRate: rate,
		Status:       string(inv.Status),
		ClosedAt:     inv.ClosedAt,
		CreatedAt:    inv.CreatedAt,
	}
}
