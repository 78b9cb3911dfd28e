package loan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/uow"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/ledger"
	"github.com/nimeshpoudel7/enhancefund/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	gw       gateway.PaymentGateway
	notifier gateway.Notifier
}

func NewUsecase(tx uow.UnitOfWork, gw gateway.PaymentGateway, notifier gateway.Notifier) *Usecase {
	return &Usecase{uow: tx, gw: gw, notifier: notifier}
}

// Create prices the loan request and persists the loan together with its
// blank repayment schedule. Blocked while the borrower has any open loan.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || in.Amount <= 0 || in.TermMonths <= 0 {
		return nil, errors.New("invalid input")
	}

	plan := domain.Price(in.Amount, in.TermMonths, in.Frequency)

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		open, err := r.Loans.GetOpenLoanByBorrowerID(ctx, in.BorrowerID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateLoan, open.LoanID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		l := &domain.Loan{
			LoanID:          id.NewID32(),
			BorrowerID:      in.BorrowerID,
			Amount:          in.Amount,
			TermMonths:      in.TermMonths,
			Frequency:       in.Frequency,
			InterestRate:    plan.InterestRate,
			TotalPayable:    plan.TotalPayable,
			DisbursedAmount: domain.DisbursedAmount(in.Amount),
			Purpose:         in.Purpose,
			Status:          domain.StatusProcessing,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		schedule := domain.BuildSchedule(plan, id.NewID32)
		for i := range schedule {
			schedule[i].LoanID = l.ID
		}
		if err := r.Repayments.CreateBatch(ctx, schedule); err != nil {
			return err
		}

		dto = toLoanDTO(l, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListByBorrower returns the borrower's loans with their live funding totals.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	return u.list(ctx, func(ctx context.Context, r uow.Repos) ([]domain.Loan, error) {
		return r.Loans.ListByBorrowerID(ctx, borrowerID)
	})
}

// Marketplace returns loans still open for funding.
func (u *Usecase) Marketplace(ctx context.Context) ([]LoanDTO, error) {
	return u.list(ctx, func(ctx context.Context, r uow.Repos) ([]domain.Loan, error) {
		return r.Loans.ListUnfulfilled(ctx)
	})
}

func (u *Usecase) list(ctx context.Context, fetch func(context.Context, uow.Repos) ([]domain.Loan, error)) ([]LoanDTO, error) {
	var out []LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := fetch(ctx, r)
		if err != nil {
			return err
		}
		out = make([]LoanDTO, 0, len(loans))
		for i := range loans {
			funded, err := r.Investments.SumByLoanID(ctx, loans[i].ID)
			if err != nil {
				return err
			}
			out = append(out, *toLoanDTO(&loans[i], funded))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Repayments evaluates every installment of the borrower's loan against the
// current time. The evaluation may flip installments to missed and escalate
// their amount due; mutations are persisted before the view is returned, so
// calling this repeatedly within a month is safe.
func (u *Usecase) Repayments(ctx context.Context, borrowerID, loanID string) ([]InstallmentDTO, error) {
	now := time.Now().UTC()
	var out []InstallmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if l.BorrowerID != borrowerID {
			return domain.ErrNotFound
		}
		if l.Status == domain.StatusRepaid {
			out = []InstallmentDTO{}
			return nil
		}

		items, err := r.Repayments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]InstallmentDTO, 0, len(items))
		for i := range items {
			ev, mutated := items[i].Evaluate(now)
			if mutated {
				if err := r.Repayments.Save(ctx, &items[i]); err != nil {
					return err
				}
			}
			out = append(out, toInstallmentDTO(loanID, &items[i], ev))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RepaymentCheckout creates a hosted payment link for one unpaid installment.
func (u *Usecase) RepaymentCheckout(ctx context.Context, in RepaymentCheckoutInput) (*CheckoutDTO, error) {
	var amount float64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, in.LoanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if l.BorrowerID != in.BorrowerID {
			return domain.ErrNotFound
		}

		ri, err := r.Repayments.GetByRepaymentID(ctx, in.RepaymentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRepaymentNotFound
		}
		if err != nil {
			return err
		}
		if ri.LoanID != l.ID {
			return domain.ErrRepaymentMismatch
		}
		if ri.PaymentStatus == domain.PaymentPaid {
			return domain.ErrAlreadyPaid
		}
		amount = ri.AmountDue
		return nil
	})
	if err != nil {
		return nil, err
	}

	co, err := u.gw.CreateCheckout(ctx, in.BorrowerID, amount, in.RepaymentID)
	if err != nil {
		return nil, err
	}
	return &CheckoutDTO{PaymentID: co.ID, URL: co.URL, Amount: amount}, nil
}

// ConfirmRepayment finishes a repayment after the gateway reports the
// checkout complete. Idempotent on the gateway payment id: a replay appends
// nothing and reports the installment as already settled.
func (u *Usecase) ConfirmRepayment(ctx context.Context, in ConfirmRepaymentInput) (*InstallmentDTO, error) {
	st, err := u.gw.RetrieveStatus(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if st.Status != gateway.StatusComplete {
		return nil, ErrPaymentIncomplete
	}
	amountPaid := domain.Round2(float64(st.AmountTotal) / 100)

	var dto *InstallmentDTO
	var loanRepaid, replayed bool
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ri, err := r.Repayments.GetByRepaymentID(ctx, in.RepaymentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRepaymentNotFound
		}
		if err != nil {
			return err
		}

		l, err := r.Loans.GetByLoanIDForUpdate(ctx, in.LoanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		if l.BorrowerID != in.BorrowerID {
			return domain.ErrNotFound
		}
		if ri.LoanID != l.ID {
			return domain.ErrRepaymentMismatch
		}

		extID := in.PaymentID
		_, err = ledger.Record(ctx, r, in.BorrowerID, amountPaid, wallet.TypePayment, &extID)
		if errors.Is(err, wallet.ErrAlreadyProcessed) {
			// replayed confirmation: report current state, change nothing
			replayed = true
			d := toInstallmentDTO(in.LoanID, ri, domain.Evaluation{PaymentStatus: ri.PaymentStatus, AmountDue: ri.AmountDue})
			dto = &d
			return nil
		}
		if err != nil {
			return err
		}

		ri.RegisterPayment(amountPaid)
		if err := r.Repayments.Save(ctx, ri); err != nil {
			return err
		}

		unpaid, err := r.Repayments.CountUnpaidByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if unpaid == 0 {
			l.Status = domain.StatusRepaid
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			loanRepaid = true
		}

		d := toInstallmentDTO(in.LoanID, ri, domain.Evaluation{PaymentStatus: ri.PaymentStatus, AmountDue: ri.AmountDue})
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	// replays settled nothing new, so they fan out nothing
	if u.notifier != nil && !replayed {
		u.notifier.Notify(in.BorrowerID, "repayment_confirmed")
		if loanRepaid {
			u.notifier.Notify(in.BorrowerID, "loan_repaid")
		}
	}
	if loanRepaid {
		log.Printf("loan %s fully repaid", in.LoanID)
	}
	return dto, nil
}
