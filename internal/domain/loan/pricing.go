package loan

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// BaseInterestRate is the platform-wide starting rate; the payment
	// frequency adds a surcharge on top.
	BaseInterestRate = 10.0
	// PlatformFeeRate is withheld from the principal at disbursement.
	PlatformFeeRate = 0.03
	// EffectiveRateFactor discounts the nominal rate to the investor-facing
	// effective rate used for net-return projections.
	EffectiveRateFactor = 0.97
)

var frequencySurcharge = map[Frequency]float64{
	FrequencyMonthly:   0,
	FrequencyQuarterly: 1.5,
	FrequencyOneTime:   5.5,
}

// Plan is the priced repayment plan for a loan request.
type Plan struct {
	InterestRate      float64
	TotalPayable      float64
	InstallmentCount  int
	InstallmentAmount float64
}

// InterestRate returns base rate plus the frequency surcharge. Unknown
// frequencies fall back to the monthly cadence.
func InterestRateFor(freq Frequency) float64 {
	return BaseInterestRate + frequencySurcharge[freq]
}

// Price computes the repayment plan for a loan request. The total payable is
// compound interest on the full principal, split evenly across installments;
// it is not an amortizing schedule.
func Price(amount float64, termMonths int, freq Frequency) Plan {
	rate := InterestRateFor(freq)
	monthlyRate := rate / 100 / 12
	total := Round2(amount * math.Pow(1+monthlyRate, float64(termMonths)))

	count := installmentCount(termMonths, freq)
	return Plan{
		InterestRate:      rate,
		TotalPayable:      total,
		InstallmentCount:  count,
		InstallmentAmount: Round2(total / float64(count)),
	}
}

func installmentCount(termMonths int, freq Frequency) int {
	switch freq {
	case FrequencyOneTime:
		return 1
	case FrequencyQuarterly:
		return int(math.Ceil(float64(termMonths) / 3))
	default:
		// monthly, and anything unrecognized
		return termMonths
	}
}

// DisbursedAmount is the principal minus the platform fee, paid out to the
// borrower at fulfillment.
func DisbursedAmount(principal float64) float64 {
	return Round2(principal * (1 - PlatformFeeRate))
}

// EffectiveRate is the investor-facing rate after the platform's cut.
func EffectiveRate(nominalRate float64) float64 {
	return Round2(nominalRate * EffectiveRateFactor)
}

// NetReturn is the profit an investment of amount earns over termMonths at
// the loan's nominal rate. Fixed at investment-creation time.
func NetReturn(amount, nominalRate float64, termMonths int) float64 {
	years := decimal.NewFromInt(int64(termMonths)).Div(decimal.NewFromInt(12))
	rate := decimal.NewFromFloat(nominalRate).Mul(decimal.NewFromFloat(EffectiveRateFactor))
	ret := decimal.NewFromFloat(amount).Mul(rate).Div(decimal.NewFromInt(100)).Mul(years)
	return ret.Round(2).InexactFloat64()
}

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
