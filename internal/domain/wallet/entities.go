package wallet

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleInvestor Role = "investor"
)

type TransactionType string

const (
	TypeDeposit          TransactionType = "deposit"
	TypeWithdrawal       TransactionType = "withdrawal"
	TypeInvestment       TransactionType = "investment"
	TypePayment          TransactionType = "payment"
	TypeInvestmentReturn TransactionType = "investment_return"
)

var (
	ErrBalanceNotFound     = errors.New("no wallet balance found for this user")
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAlreadyProcessed is the idempotent-replay signal: the external
	// payment id was credited before. Callers treat it as success.
	ErrAlreadyProcessed = errors.New("payment id already processed")
	// ErrNegativeBalance marks an invariant violation that correct locking
	// makes unreachable. It must abort the operation, never be swallowed.
	ErrNegativeBalance = errors.New("balance would go negative")
)

// Balance holds a user's wallet funds. One row per user and role; every
// mutation goes through the ledger service.
type Balance struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID         string    `gorm:"size:32;uniqueIndex:ux_balances_user_role,priority:1" json:"user_id"`
	Role           Role      `gorm:"size:16;uniqueIndex:ux_balances_user_role,priority:2" json:"role"`
	AccountBalance float64   `gorm:"type:decimal(18,2);default:0" json:"account_balance"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Balance) TableName() string { return "balances" }

// Transaction is one row of the append-only money-movement log.
// ExternalPaymentID, when set, is the gateway's idempotency key; its
// uniqueness is what makes confirmation retries safe.
type Transaction struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID     string          `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	UserID            string          `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	Type              TransactionType `gorm:"column:transaction_type;size:24" json:"transaction_type"`
	Amount            float64         `gorm:"type:decimal(18,2)" json:"amount"`
	ExternalPaymentID *string         `gorm:"column:external_payment_id;size:128;uniqueIndex:ux_transactions_external_payment_id" json:"external_payment_id,omitempty"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
