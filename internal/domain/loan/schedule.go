package loan

import "time"

const (
	// EscalationFactor is applied to a missed installment's amount due, at
	// most once per calendar month.
	EscalationFactor = 1.05
	// DueSoonWindow is how far ahead an upcoming installment is surfaced as
	// payable.
	DueSoonWindow = 15 * 24 * time.Hour
)

// BuildSchedule creates the installment rows for a freshly priced loan. Due
// dates stay nil until the loan is fulfilled.
func BuildSchedule(plan Plan, newID func() string) []RepaymentInstallment {
	out := make([]RepaymentInstallment, 0, plan.InstallmentCount)
	for i := 1; i <= plan.InstallmentCount; i++ {
		out = append(out, RepaymentInstallment{
			RepaymentID:       newID(),
			InstallmentNumber: i,
			AmountDue:         plan.InstallmentAmount,
			PaymentStatus:     PaymentPending,
		})
	}
	return out
}

// AssignDueDates stamps due dates once, at fulfillment time. The cadence is
// derived from the installment count: 1 is a one-time payment due in 30 days,
// 4 quarterly installments step by 90 days, 12 monthly installments step by
// 30 days. Any other count is rejected.
func AssignDueDates(items []RepaymentInstallment, fulfilledAt time.Time) error {
	var stepDays int
	switch len(items) {
	case 1:
		stepDays = 30
	case 4:
		stepDays = 90
	case 12:
		stepDays = 30
	default:
		return ErrUnsupportedCadence
	}
	for i := range items {
		if items[i].DueDate != nil {
			return ErrDueDatesAssigned
		}
		due := fulfilledAt.AddDate(0, 0, stepDays*(i+1))
		items[i].DueDate = &due
	}
	return nil
}

// Evaluation is the read-model produced by evaluating an installment against
// the current time.
type Evaluation struct {
	PaymentStatus  PaymentStatus
	AmountDue      float64
	DueSoon        bool
	Escalated      bool
	PaymentEnabled bool
}

// Evaluate checks an installment's due date against now, transitioning it to
// missed and escalating the amount due when overdue. Escalation applies at
// most once per calendar month no matter how often this is called; the
// returned bool reports whether the installment was mutated and must be
// persisted.
func (ri *RepaymentInstallment) Evaluate(now time.Time) (Evaluation, bool) {
	ev := Evaluation{PaymentStatus: ri.PaymentStatus, AmountDue: ri.AmountDue}
	if ri.DueDate == nil || ri.PaymentStatus == PaymentPaid {
		return ev, false
	}

	mutated := false
	due := *ri.DueDate
	if due.After(now) {
		if due.Sub(now) <= DueSoonWindow {
			ev.DueSoon = true
		}
	} else {
		if ri.PaymentStatus != PaymentMissed {
			ri.PaymentStatus = PaymentMissed
			mutated = true
		}
		if !escalatedThisMonth(ri.LastEscalatedAt, now) {
			ri.AmountDue = Round2(ri.AmountDue * EscalationFactor)
			t := now
			ri.LastEscalatedAt = &t
			ev.Escalated = true
			mutated = true
		}
	}

	ev.PaymentStatus = ri.PaymentStatus
	ev.AmountDue = ri.AmountDue
	ev.PaymentEnabled = ri.PaymentStatus == PaymentMissed || ev.DueSoon
	return ev, mutated
}

func escalatedThisMonth(last *time.Time, now time.Time) bool {
	if last == nil {
		return false
	}
	ly, lm, _ := last.UTC().Date()
	ny, nm, _ := now.UTC().Date()
	return ly == ny && lm == nm
}

// RegisterPayment books a confirmed payment against the installment. The
// amount due is floored at zero; an overpayment on the final installment is
// kept visible through AmountPaid rather than carried as negative debt.
func (ri *RepaymentInstallment) RegisterPayment(amount float64) {
	ri.AmountPaid = Round2(ri.AmountPaid + amount)
	due := Round2(ri.AmountDue - amount)
	if due < 0 {
		due = 0
	}
	ri.AmountDue = due
	ri.PaymentStatus = PaymentPaid
}
