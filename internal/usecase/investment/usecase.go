package investment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
	domain "github.com/nimeshpoudel7/enhancefund/internal/domain/investment"
	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/uow"
	"github.com/nimeshpoudel7/enhancefund/internal/domain/wallet"
	"github.com/nimeshpoudel7/enhancefund/internal/usecase/ledger"
	"github.com/nimeshpoudel7/enhancefund/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	notifier gateway.Notifier
}

func NewUsecase(tx uow.UnitOfWork, notifier gateway.Notifier) *Usecase {
	return &Usecase{uow: tx, notifier: notifier}
}

// Invest commits investor capital to a loan. The remaining-amount check, the
// investment insert, the investor debit and the fulfillment side effects all
// run under the loan row lock, so two racing investors can never jointly
// overfund the loan, and the investor is never debited without a matching
// investment record.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("invalid amount")
	}

	var dto *InvestmentDTO
	var fulfilled bool
	var borrowerID string
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.IsFulfilled {
			return loanDomain.ErrAlreadyFulfilled
		}

		invested, err := r.Investments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		remaining := loanDomain.Round2(l.Amount - invested)
		if in.Amount > remaining {
			return fmt.Errorf("%w: only %.2f is available", loanDomain.ErrExceedsRemaining, remaining)
		}

		now := time.Now().UTC()
		inv := &domain.Investment{
			InvestmentID: id.NewID32(),
			InvestorID:   in.InvestorID,
			LoanID:       l.ID,
			Amount:       in.Amount,
			NetReturn:    loanDomain.NetReturn(in.Amount, l.InterestRate, l.TermMonths),
			Status:       domain.StatusOpen,
			ClosedAt:     now.AddDate(0, l.TermMonths, 0),
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}

		if _, err := ledger.Debit(ctx, r, in.InvestorID, wallet.RoleInvestor, in.Amount, wallet.TypeInvestment); err != nil {
			return err
		}

		newTotal, err := r.Investments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		if loanDomain.Round2(l.Amount-newTotal) == 0 {
			if err := u.fulfill(ctx, r, l, now); err != nil {
				return err
			}
			fulfilled = true
			borrowerID = l.BorrowerID
		}

		d := toInvestmentDTO(inv, l.LoanID, loanDomain.EffectiveRate(l.InterestRate))
		dto = &d
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if fulfilled {
		log.Printf("loan %s fully funded", in.LoanID)
		if u.notifier != nil {
			u.notifier.Notify(borrowerID, "loan_fulfilled")
		}
	}
	return dto, nil
}

// fulfill flips the loan to approved, stamps the repayment due dates, and
// disburses the principal minus the platform fee to the borrower.
func (u *Usecase) fulfill(ctx context.Context, r uow.Repos, l *loanDomain.Loan, now time.Time) error {
	l.IsFulfilled = true
	l.Status = loanDomain.StatusApproved
	t := now
	l.FulfilledAt = &t
	if err := r.Loans.Save(ctx, l); err != nil {
		return err
	}

	items, err := r.Repayments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return err
	}
	if err := loanDomain.AssignDueDates(items, now); err != nil {
		return err
	}
	for i := range items {
		if err := r.Repayments.Save(ctx, &items[i]); err != nil {
			return err
		}
	}

	_, err = ledger.Credit(ctx, r, l.BorrowerID, wallet.RoleBorrower, l.DisbursedAmount, wallet.TypeDeposit, nil)
	return err
}

// ExpectedReturn projects the future value of a candidate investment at the
// loan's effective (post-fee) rate.
func (u *Usecase) ExpectedReturn(ctx context.Context, loanID string, amount, years float64) (*ExpectedReturnDTO, error) {
	var dto *ExpectedReturnDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loanDomain.ErrNotFound
		}
		if err != nil {
			return err
		}
		rate := loanDomain.EffectiveRate(l.InterestRate)
		dto = &ExpectedReturnDTO{
			Amount:       amount,
			NetReturn:    loanDomain.Round2(amount * (1 + rate*years/100)),
			InterestRate: rate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MyInvestments lists the investor's holdings with their loans attached.
func (u *Usecase) MyInvestments(ctx context.Context, investorID string) ([]InvestmentDTO, error) {
	var out []InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		invs, err := r.Investments.ListByInvestorID(ctx, investorID)
		if err != nil {
			return err
		}
		out = make([]InvestmentDTO, 0, len(invs))
		for i := range invs {
			l, err := r.Loans.GetByID(ctx, invs[i].LoanID)
			if err != nil {
				return err
			}
			d := toInvestmentDTO(&invs[i], l.LoanID, loanDomain.EffectiveRate(l.InterestRate))
			d.Loan = &LoanSummary{
				LoanID:      l.LoanID,
				Amount:      l.Amount,
				Purpose:     l.Purpose,
				TermMonths:  l.TermMonths,
				IsFulfilled: l.IsFulfilled,
			}
			out = append(out, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Portfolio aggregates the investor's holdings: totals, per-purpose slices
// and a flat history. Realized returns come from closed investments; open
// ones contribute their projected net return.
func (u *Usecase) Portfolio(ctx context.Context, investorID string) (*PortfolioDTO, error) {
	p := &PortfolioDTO{
		ByPurpose: map[string]PurposeSlice{},
		History:   []PortfolioEntry{},
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		invs, err := r.Investments.ListByInvestorID(ctx, investorID)
		if err != nil {
			return err
		}
		loans := map[uint64]*loanDomain.Loan{}
		for i := range invs {
			inv := &invs[i]
			l, ok := loans[inv.LoanID]
			if !ok {
				l, err = r.Loans.GetByID(ctx, inv.LoanID)
				if err != nil {
					return err
				}
				loans[inv.LoanID] = l
			}

			p.TotalInvested += inv.Amount
			realized := inv.Status == domain.StatusClosed
			if realized {
				p.TotalActualReturn += inv.NetReturn
			} else {
				p.TotalExpectedReturn += inv.NetReturn
			}

			slice := p.ByPurpose[l.Purpose]
			slice.TotalAmount = loanDomain.Round2(slice.TotalAmount + inv.Amount)
			slice.Count++
			p.ByPurpose[l.Purpose] = slice

			p.History = append(p.History, PortfolioEntry{
				Date:         inv.CreatedAt,
				Amount:       inv.Amount,
				Purpose:      l.Purpose,
				InterestRate: loanDomain.EffectiveRate(l.InterestRate),
				NetReturn:    inv.NetReturn,
				Realized:     realized,
			})
		}
		p.TotalLoans = len(loans)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.TotalInvested = loanDomain.Round2(p.TotalInvested)
	p.TotalExpectedReturn = loanDomain.Round2(p.TotalExpectedReturn)
	p.TotalActualReturn = loanDomain.Round2(p.TotalActualReturn)
	p.PortfolioValue = loanDomain.Round2(p.TotalInvested + p.TotalActualReturn + p.TotalExpectedReturn)
	return p, nil
}

// CloseMatured walks the investor's open investments whose term has elapsed
// and whose loan is fully repaid, credits each net return to the investor's
// wallet and closes the investment. Investments that are matured but not yet
// repaid are left open for a later run.
func (u *Usecase) CloseMatured(ctx context.Context, investorID string) ([]ClosureDTO, error) {
	now := time.Now().UTC()
	var out []ClosureDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		matured, err := r.Investments.ListMatured(ctx, investorID, now)
		if err != nil {
			return err
		}
		out = make([]ClosureDTO, 0, len(matured))
		for i := range matured {
			inv := &matured[i]
			l, err := r.Loans.GetByID(ctx, inv.LoanID)
			if err != nil {
				return err
			}
			if l.Status != loanDomain.StatusRepaid || inv.NetReturn <= 0 {
				continue
			}

			txn, err := ledger.Credit(ctx, r, investorID, wallet.RoleInvestor, inv.NetReturn, wallet.TypeInvestmentReturn, nil)
			if err != nil {
				return err
			}

			inv.Status = domain.StatusClosed
			inv.ClosedAt = now
			if err := r.Investments.Save(ctx, inv); err != nil {
				return err
			}

			out = append(out, ClosureDTO{
				InvestmentID:   inv.InvestmentID,
				LoanID:         l.LoanID,
				AmountInvested: inv.Amount,
				NetReturn:      inv.NetReturn,
				TransactionID:  txn.TransactionID,
				ClosedAt:       now,
				Status:         string(domain.StatusClosed),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if u.notifier != nil && len(out) > 0 {
		u.notifier.Notify(investorID, "investment_returns_released")
	}
	return out, nil
}
