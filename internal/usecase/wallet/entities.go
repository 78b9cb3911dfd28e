package wallet

import (
	"time"

	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
)

type ConfirmDepositInput struct {
	UserID    string
	Role      domain.Role
	PaymentID string
}

type WithdrawInput struct {
	UserID             string
	Role               domain.Role
	Amount             float64
	DestinationAccount string
}

type CheckoutDTO struct {
	PaymentID string  `json:"payment_id"`
	URL       string  `json:"url"`
	Amount    float64 `json:"amount"`
}

type BalanceDTO struct {
	UserID           string  `json:"user_id"`
	Role             string  `json:"role"`
	AccountBalance   float64 `json:"account_balance"`
	AlreadyProcessed bool    `json:"already_processed,omitempty"`
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"transaction_type"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
