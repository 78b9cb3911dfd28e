package investment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

var ErrNotFound = errors.New("investment not found")

type Investment struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string         `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorID   string         `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	LoanID       uint64         `gorm:"column:loan_id;index:idx_investments_loan" json:"-"`
	Amount       float64        `gorm:"type:decimal(18,2)" json:"amount"`
	NetReturn    float64        `gorm:"type:decimal(18,2)" json:"net_return"`
	Status       Status         `gorm:"size:16;default:'open'" json:"status"`
	ClosedAt     time.Time      `gorm:"column:closed_at" json:"closed_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }
