package wallet

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/uow"
	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/ledger"
)

// ErrPaymentIncomplete means the gateway has not settled the checkout yet.
var ErrPaymentIncomplete = errors.New("payment is incomplete")

type Usecase struct {
	uow      uow.UnitOfWork
	gw       gateway.PaymentGateway
	notifier gateway.Notifier
}

func NewUsecase(tx uow.UnitOfWork, gw gateway.PaymentGateway, notifier gateway.Notifier) *Usecase {
	return &Usecase{uow: tx, gw: gw, notifier: notifier}
}

// AddFunds creates a hosted checkout for topping up the wallet. Nothing is
// credited until the gateway confirms via ConfirmDeposit.
func (u *Usecase) AddFunds(ctx context.Context, userID string, amount float64) (*CheckoutDTO, error) {
	if amount <= 0 {
		return nil, errors.New("invalid amount")
	}
	co, err := u.gw.CreateCheckout(ctx, userID, amount, uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &CheckoutDTO{PaymentID: co.ID, URL: co.URL, Amount: amount}, nil
}

// ConfirmDeposit credits the wallet once the gateway reports the checkout
// complete. Idempotent on the gateway payment id: replays credit nothing and
// report the already-settled balance.
func (u *Usecase) ConfirmDeposit(ctx context.Context, in ConfirmDepositInput) (*BalanceDTO, error) {
	st, err := u.gw.RetrieveStatus(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if st.Status != gateway.StatusComplete {
		return nil, ErrPaymentIncomplete
	}
	amount := loanDomain.Round2(float64(st.AmountTotal) / 100)

	var dto *BalanceDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		extID := in.PaymentID
		_, err := ledger.Credit(ctx, r, in.UserID, in.Role, amount, domain.TypeDeposit, &extID)
		alreadyProcessed := errors.Is(err, domain.ErrAlreadyProcessed)
		if err != nil && !alreadyProcessed {
			return err
		}

		b, err := r.Balances.GetByUser(ctx, in.UserID, in.Role)
		if err != nil {
			return err
		}
		dto = &BalanceDTO{
			UserID:           b.UserID,
			Role:             string(b.Role),
			AccountBalance:   b.AccountBalance,
			AlreadyProcessed: alreadyProcessed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Balance returns the user's wallet balance.
func (u *Usecase) Balance(ctx context.Context, userID string, role domain.Role) (*BalanceDTO, error) {
	var dto *BalanceDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Balances.GetByUser(ctx, userID, role)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBalanceNotFound
		}
		if err != nil {
			return err
		}
		dto = &BalanceDTO{UserID: b.UserID, Role: string(b.Role), AccountBalance: b.AccountBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Withdraw pays wallet funds out to the user's external account. The gateway
// transfer runs before the local debit; a gateway failure aborts the whole
// withdrawal and leaves the balance untouched. The debit itself re-checks
// funds under the balance row lock.
func (u *Usecase) Withdraw(ctx context.Context, in WithdrawInput) (*TransactionDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("invalid amount")
	}

	// cheap pre-check so we do not call the gateway for obviously short funds
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Balances.GetByUser(ctx, in.UserID, in.Role)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInsufficientBalance
		}
		if err != nil {
			return err
		}
		if b.AccountBalance < in.Amount {
			return domain.ErrInsufficientBalance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := u.gw.Payout(ctx, in.Amount, in.DestinationAccount); err != nil {
		return nil, err
	}
	if err := u.gw.Transfer(ctx, in.Amount, in.DestinationAccount); err != nil {
		return nil, err
	}

	var dto *TransactionDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		txn, err := ledger.Debit(ctx, r, in.UserID, in.Role, in.Amount, domain.TypeWithdrawal)
		if err != nil {
			return err
		}
		dto = &TransactionDTO{
			TransactionID: txn.TransactionID,
			Type:          string(txn.Type),
			Amount:        txn.Amount,
			CreatedAt:     txn.CreatedAt,
		}
		return nil
	})
	if err != nil {
		log.Printf("withdrawal debit failed for user %s after gateway payout: %v", in.UserID, err)
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.Notify(in.UserID, "withdrawal_completed")
	}
	return dto, nil
}

// Transactions lists the user's slice of the append-only transaction log.
func (u *Usecase) Transactions(ctx context.Context, userID string) ([]TransactionDTO, error) {
	var out []TransactionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		txns, err := r.Transactions.ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		out = make([]TransactionDTO, 0, len(txns))
		for _, t := range txns {
			out = append(out, TransactionDTO{
				TransactionID: t.TransactionID,
				Type:          string(t.Type),
				Amount:        t.Amount,
				CreatedAt:     t.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
