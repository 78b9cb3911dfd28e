package statement

import (
	"math"
	"sort"
	"time"
)

const (
	// AssumedCreditLimit anchors the utilization ratio; there is no real
	// limit on file for a statement upload.
	AssumedCreditLimit = 1000.0
	largePurchaseFloor = -100.0
)

// Features is the fixed feature vector extracted from one statement period.
type Features struct {
	TotalSpending          float64 `json:"total_spending"`
	AverageTransaction     float64 `json:"average_transaction"`
	TransactionFrequency   float64 `json:"transaction_frequency"`
	LargePurchaseFrequency float64 `json:"large_purchase_frequency"`
	RecurringTransactions  float64 `json:"recurring_transactions"`
	PaymentConsistency     float64 `json:"payment_consistency"`
	CreditUtilization      float64 `json:"credit_utilization"`

	PeriodStart time.Time `json:"statement_start_date"`
	PeriodEnd   time.Time `json:"statement_end_date"`
}

// ExtractFeatures turns an ordered transaction list into the feature vector
// consumed by the risk scorer. Returns ErrNoTransactions on an empty list.
func ExtractFeatures(records []Record) (Features, error) {
	if len(records) == 0 {
		return Features{}, ErrNoTransactions
	}

	var f Features
	f.PeriodStart, f.PeriodEnd = period(records)

	var absSum float64
	var large int
	for _, r := range records {
		if r.Amount < 0 {
			f.TotalSpending += -r.Amount
		}
		if r.Amount < largePurchaseFloor {
			large++
		}
		absSum += math.Abs(r.Amount)
	}
	n := float64(len(records))
	f.AverageTransaction = absSum / n
	f.LargePurchaseFrequency = float64(large) / n

	days := f.PeriodEnd.Sub(f.PeriodStart).Hours() / 24
	if days < 1 {
		days = 1
	}
	f.TransactionFrequency = n / days

	f.RecurringTransactions = recurringShare(records)
	f.PaymentConsistency = paymentConsistency(records)
	f.CreditUtilization = math.Min(f.TotalSpending/AssumedCreditLimit, 1)
	return f, nil
}

func period(records []Record) (time.Time, time.Time) {
	start, end := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(start) {
			start = r.Date
		}
		if r.Date.After(end) {
			end = r.Date
		}
	}
	return start, end
}

// recurringShare is the fraction of all transactions that belong to an
// expense description-group with more than two occurrences whose gaps
// between consecutive transactions vary by less than five days.
func recurringShare(records []Record) float64 {
	groups := map[string][]time.Time{}
	for _, r := range records {
		if r.Amount < 0 {
			groups[r.Description] = append(groups[r.Description], r.Date)
		}
	}

	recurring := 0
	for _, dates := range groups {
		if len(dates) <= 2 {
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		gaps := make([]float64, 0, len(dates)-1)
		for i := 1; i < len(dates); i++ {
			gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
		}
		if sampleStdev(gaps) < 5 {
			recurring += len(dates)
		}
	}
	return float64(recurring) / float64(len(records))
}

// paymentConsistency maps the spread of gaps between incoming payments onto
// (0, 1]: perfectly regular payments score 1. Fewer than two payments score 0.
func paymentConsistency(records []Record) float64 {
	var dates []time.Time
	for _, r := range records {
		if r.Amount > 0 {
			dates = append(dates, r.Date)
		}
	}
	if len(dates) < 2 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	gaps := make([]float64, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]).Hours()/24)
	}
	return 1 / (1 + sampleStdev(gaps))
}

// sampleStdev is the ddof=1 standard deviation; a single observation has no
// spread and yields 0.
func sampleStdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
