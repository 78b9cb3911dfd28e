// Package ledger holds the balance/transaction primitives every money
// movement goes through. The functions take a uow.Repos bundle so callers can
// compose several movements inside one database transaction.
package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/uow"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	"github.com/nimeshpoudel7/enhancefund/pkg/id"
)

// Credit increments the user's balance and appends a transaction. When
// externalID is set and a transaction with that id already exists, nothing is
// written and wallet.ErrAlreadyProcessed is returned; callers treat that as a
// successful no-op. A missing balance row is created on first credit.
func Credit(ctx context.Context, r uow.Repos, userID string, role wallet.Role, amount float64, txnType wallet.TransactionType, externalID *string) (*wallet.Transaction, error) {
	if externalID != nil {
		_, err := r.Transactions.GetByExternalPaymentID(ctx, *externalID)
		switch {
		case err == nil:
			return nil, wallet.ErrAlreadyProcessed
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	b, err := r.Balances.GetByUserForUpdate(ctx, userID, role)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		b = &wallet.Balance{UserID: userID, Role: role}
		if err := r.Balances.Create(ctx, b); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	b.AccountBalance = loan.Round2(b.AccountBalance + amount)
	if err := r.Balances.Save(ctx, b); err != nil {
		return nil, err
	}

	t := &wallet.Transaction{
		TransactionID:     id.NewID32(),
		UserID:            userID,
		Type:              txnType,
		Amount:            amount,
		ExternalPaymentID: externalID,
	}
	if err := r.Transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Record appends a transaction without touching any balance. Used for money
// that moved entirely outside the wallet (a repayment settled at the
// gateway). Same external-id replay protection as Credit.
func Record(ctx context.Context, r uow.Repos, userID string, amount float64, txnType wallet.TransactionType, externalID *string) (*wallet.Transaction, error) {
	if externalID != nil {
		_, err := r.Transactions.GetByExternalPaymentID(ctx, *externalID)
		switch {
		case err == nil:
			return nil, wallet.ErrAlreadyProcessed
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	t := &wallet.Transaction{
		TransactionID:     id.NewID32(),
		UserID:            userID,
		Type:              txnType,
		Amount:            amount,
		ExternalPaymentID: externalID,
	}
	if err := r.Transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Debit decrements the user's balance and appends a transaction. It rejects
// with wallet.ErrInsufficientBalance when funds are short; the balance row is
// locked, so two concurrent debits cannot both pass the check.
func Debit(ctx context.Context, r uow.Repos, userID string, role wallet.Role, amount float64, txnType wallet.TransactionType) (*wallet.Transaction, error) {
	b, err := r.Balances.GetByUserForUpdate(ctx, userID, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wallet.ErrInsufficientBalance
	}
	if err != nil {
		return nil, err
	}
	if b.AccountBalance < amount {
		return nil, wallet.ErrInsufficientBalance
	}

	b.AccountBalance = loan.Round2(b.AccountBalance - amount)
	if b.AccountBalance < 0 {
		// unreachable while the row lock holds
		return nil, wallet.ErrNegativeBalance
	}
	if err := r.Balances.Save(ctx, b); err != nil {
		return nil, err
	}

	t := &wallet.Transaction{
		TransactionID: id.NewID32(),
		UserID:        userID,
		Type:          txnType,
		Amount:        amount,
	}
	if err := r.Transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
