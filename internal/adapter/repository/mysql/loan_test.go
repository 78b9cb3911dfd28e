package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	loanDomain "github.com/nimeshpoudel7/enhancefund/internal/domain/loan"
)

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLoanRepository(db)

	l := makeLoan("LN-1", "BR-1")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("auto id not set")
	}

	got, err := repo.GetByLoanID(ctx, "LN-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BorrowerID != "BR-1" || got.Amount != 1200 || got.Status != loanDomain.StatusProcessing {
		t.Fatalf("got %+v", got)
	}

	byID, err := repo.GetByID(ctx, l.ID)
	if err != nil || byID.LoanID != "LN-1" {
		t.Fatalf("get by numeric id: %+v, %v", byID, err)
	}
}

func TestLoanRepository_GetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	if _, err := repo.GetByLoanID(context.Background(), "LN-NOPE"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestLoanRepository_GetOpenLoanByBorrowerID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLoanRepository(db)

	open := makeLoan("LN-OPEN", "BR-1")
	if err := repo.Create(ctx, open); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetOpenLoanByBorrowerID(ctx, "BR-1")
	if err != nil || got.LoanID != "LN-OPEN" {
		t.Fatalf("got %+v, %v", got, err)
	}

	// repaid loans no longer block
	got.Status = loanDomain.StatusRepaid
	if err := repo.Save(ctx, got); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetOpenLoanByBorrowerID(ctx, "BR-1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound after repaid", err)
	}
}

func TestLoanRepository_ListUnfulfilled(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLoanRepository(db)

	a := makeLoan("LN-A", "BR-1")
	b := makeLoan("LN-B", "BR-2")
	b.IsFulfilled = true
	for _, l := range []*loanDomain.Loan{a, b} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	out, err := repo.ListUnfulfilled(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].LoanID != "LN-A" {
		t.Fatalf("unfulfilled = %+v", out)
	}
}

func TestRepaymentRepository_BatchAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	loans := NewLoanRepository(db)
	repo := NewRepaymentRepository(db)

	l := makeLoan("LN-1", "BR-1")
	if err := loans.Create(ctx, l); err != nil {
		t.Fatal(err)
	}

	plan := loanDomain.Price(l.Amount, l.TermMonths, l.Frequency)
	n := 0
	items := loanDomain.BuildSchedule(plan, func() string {
		n++
		return "RP-" + string(rune('0'+n%10)) + string(rune('a'+n))
	})
	for i := range items {
		items[i].LoanID = l.ID
	}
	if err := repo.CreateBatch(ctx, items); err != nil {
		t.Fatalf("batch: %v", err)
	}

	listed, err := repo.ListByLoanID(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 12 {
		t.Fatalf("listed = %d, want 12", len(listed))
	}
	for i, ri := range listed {
		if ri.InstallmentNumber != i+1 {
			t.Fatalf("ordering broken at %d: %+v", i, ri)
		}
	}

	unpaid, err := repo.CountUnpaidByLoanID(ctx, l.ID)
	if err != nil || unpaid != 12 {
		t.Fatalf("unpaid = %d, %v", unpaid, err)
	}

	listed[0].RegisterPayment(listed[0].AmountDue)
	if err := repo.Save(ctx, &listed[0]); err != nil {
		t.Fatal(err)
	}
	unpaid, err = repo.CountUnpaidByLoanID(ctx, l.ID)
	if err != nil || unpaid != 11 {
		t.Fatalf("unpaid after payment = %d, %v", unpaid, err)
	}
}
