package loan

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func fakeIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%032d", n)
	}
}

func TestBuildSchedule(t *testing.T) {
	plan := Price(1200, 12, FrequencyMonthly)
	items := BuildSchedule(plan, fakeIDs())

	if len(items) != 12 {
		t.Fatalf("len = %d, want 12", len(items))
	}
	for i, it := range items {
		if it.InstallmentNumber != i+1 {
			t.Errorf("item %d: number = %d", i, it.InstallmentNumber)
		}
		if it.AmountDue != plan.InstallmentAmount {
			t.Errorf("item %d: amount due = %v, want %v", i, it.AmountDue, plan.InstallmentAmount)
		}
		if it.PaymentStatus != PaymentPending {
			t.Errorf("item %d: status = %s", i, it.PaymentStatus)
		}
		if it.DueDate != nil {
			t.Errorf("item %d: due date set before fulfillment", i)
		}
	}
}

func TestAssignDueDates(t *testing.T) {
	fulfilled := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		count    int
		stepDays int
	}{
		{1, 30},
		{4, 90},
		{12, 30},
	}
	for _, tc := range cases {
		items := make([]RepaymentInstallment, tc.count)
		if err := AssignDueDates(items, fulfilled); err != nil {
			t.Fatalf("count %d: %v", tc.count, err)
		}
		for i := range items {
			want := fulfilled.AddDate(0, 0, tc.stepDays*(i+1))
			if items[i].DueDate == nil || !items[i].DueDate.Equal(want) {
				t.Errorf("count %d item %d: due = %v, want %v", tc.count, i, items[i].DueDate, want)
			}
			if i > 0 && !items[i].DueDate.After(*items[i-1].DueDate) {
				t.Errorf("count %d item %d: due dates not strictly increasing", tc.count, i)
			}
		}
	}
}

func TestAssignDueDates_UnsupportedCount(t *testing.T) {
	for _, count := range []int{0, 2, 3, 6, 13} {
		items := make([]RepaymentInstallment, count)
		if err := AssignDueDates(items, time.Now()); !errors.Is(err, ErrUnsupportedCadence) {
			t.Errorf("count %d: err = %v, want ErrUnsupportedCadence", count, err)
		}
	}
}

func TestAssignDueDates_Idempotence(t *testing.T) {
	items := make([]RepaymentInstallment, 12)
	fulfilled := time.Now().UTC()
	if err := AssignDueDates(items, fulfilled); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := AssignDueDates(items, fulfilled.AddDate(0, 1, 0)); !errors.Is(err, ErrDueDatesAssigned) {
		t.Fatalf("second assign: err = %v, want ErrDueDatesAssigned", err)
	}
}

func TestEvaluate_NotDueYet(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 20)
	ri := RepaymentInstallment{DueDate: &due, AmountDue: 100, PaymentStatus: PaymentPending}

	ev, mutated := ri.Evaluate(now)
	if mutated {
		t.Fatal("installment mutated while not due")
	}
	if ev.DueSoon || ev.PaymentEnabled || ev.Escalated {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
}

func TestEvaluate_DueSoonEnablesPayment(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 10)
	ri := RepaymentInstallment{DueDate: &due, AmountDue: 100, PaymentStatus: PaymentPending}

	ev, mutated := ri.Evaluate(now)
	if mutated {
		t.Fatal("installment mutated inside due-soon window")
	}
	if !ev.DueSoon || !ev.PaymentEnabled {
		t.Fatalf("want due-soon payable, got %+v", ev)
	}
	if ev.AmountDue != 100 {
		t.Fatalf("amount due changed: %v", ev.AmountDue)
	}
}

func TestEvaluate_MissedEscalatesOncePerMonth(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ri := RepaymentInstallment{DueDate: &due, AmountDue: 100, PaymentStatus: PaymentPending}

	now := due.AddDate(0, 0, 5)
	ev, mutated := ri.Evaluate(now)
	if !mutated {
		t.Fatal("overdue installment not mutated")
	}
	if ev.PaymentStatus != PaymentMissed || !ev.Escalated || !ev.PaymentEnabled {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
	if ri.AmountDue != 105 {
		t.Fatalf("amount due = %v, want 105", ri.AmountDue)
	}

	// same calendar month: no second escalation
	ev, mutated = ri.Evaluate(now.AddDate(0, 0, 10))
	if mutated || ev.Escalated {
		t.Fatalf("escalated twice within one month: %+v", ev)
	}
	if ri.AmountDue != 105 {
		t.Fatalf("amount due = %v, want 105", ri.AmountDue)
	}

	// next calendar month: escalates again
	ev, mutated = ri.Evaluate(now.AddDate(0, 1, 0))
	if !mutated || !ev.Escalated {
		t.Fatalf("no escalation in a new month: %+v", ev)
	}
	if ri.AmountDue != 110.25 {
		t.Fatalf("amount due = %v, want 110.25", ri.AmountDue)
	}
}

func TestEvaluate_PaidInstallmentUntouched(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ri := RepaymentInstallment{DueDate: &due, AmountDue: 0, AmountPaid: 100, PaymentStatus: PaymentPaid}

	ev, mutated := ri.Evaluate(due.AddDate(0, 2, 0))
	if mutated {
		t.Fatal("paid installment mutated")
	}
	if ev.PaymentStatus != PaymentPaid || ev.PaymentEnabled {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
}

func TestEvaluate_NoDueDate(t *testing.T) {
	ri := RepaymentInstallment{AmountDue: 100, PaymentStatus: PaymentPending}
	if _, mutated := ri.Evaluate(time.Now()); mutated {
		t.Fatal("unfulfilled loan installment mutated")
	}
}

func TestRegisterPayment(t *testing.T) {
	ri := RepaymentInstallment{AmountDue: 110.47, PaymentStatus: PaymentPending}
	ri.RegisterPayment(110.47)

	if ri.PaymentStatus != PaymentPaid {
		t.Fatalf("status = %s, want paid", ri.PaymentStatus)
	}
	if ri.AmountDue != 0 || ri.AmountPaid != 110.47 {
		t.Fatalf("due = %v, paid = %v", ri.AmountDue, ri.AmountPaid)
	}
}

func TestRegisterPayment_OverpaymentClampedAtZero(t *testing.T) {
	ri := RepaymentInstallment{AmountDue: 100, PaymentStatus: PaymentMissed}
	ri.RegisterPayment(120)

	if ri.AmountDue != 0 {
		t.Fatalf("amount due = %v, want 0", ri.AmountDue)
	}
	// overpayment stays visible through amount paid
	if ri.AmountPaid != 120 {
		t.Fatalf("amount paid = %v, want 120", ri.AmountPaid)
	}
}
