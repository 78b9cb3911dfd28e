package loan

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestInterestRateFor(t *testing.T) {
	cases := []struct {
		freq Frequency
		want float64
	}{
		{FrequencyMonthly, 10.0},
		{FrequencyQuarterly, 11.5},
		{FrequencyOneTime, 15.5},
		{Frequency("weekly"), 10.0}, // unknown falls back to base
	}
	for _, tc := range cases {
		if got := InterestRateFor(tc.freq); !almostEqual(got, tc.want) {
			t.Errorf("InterestRateFor(%s) = %v, want %v", tc.freq, got, tc.want)
		}
	}
}

func TestPrice_MonthlyTwelveMonths(t *testing.T) {
	plan := Price(1200, 12, FrequencyMonthly)

	if plan.InterestRate != 10.0 {
		t.Fatalf("rate = %v, want 10.0", plan.InterestRate)
	}
	if plan.InstallmentCount != 12 {
		t.Fatalf("installments = %d, want 12", plan.InstallmentCount)
	}
	// 1200 × (1 + 0.10/12)^12, rounded to cents
	want := Round2(1200 * math.Pow(1+10.0/100/12, 12))
	if plan.TotalPayable != want {
		t.Fatalf("total payable = %v, want %v", plan.TotalPayable, want)
	}
	if plan.InstallmentAmount != Round2(want/12) {
		t.Fatalf("installment amount = %v, want %v", plan.InstallmentAmount, Round2(want/12))
	}
}

func TestPrice_InstallmentCounts(t *testing.T) {
	cases := []struct {
		term int
		freq Frequency
		want int
	}{
		{12, FrequencyMonthly, 12},
		{12, FrequencyQuarterly, 4},
		{12, FrequencyOneTime, 1},
		{10, FrequencyQuarterly, 4}, // ceil(10/3)
		{6, FrequencyMonthly, 6},
	}
	for _, tc := range cases {
		if got := Price(1000, tc.term, tc.freq).InstallmentCount; got != tc.want {
			t.Errorf("Price(term=%d, %s): installments = %d, want %d", tc.term, tc.freq, got, tc.want)
		}
	}
}

func TestDisbursedAmount(t *testing.T) {
	if got := DisbursedAmount(1200); got != 1164 {
		t.Fatalf("DisbursedAmount(1200) = %v, want 1164", got)
	}
	if got := DisbursedAmount(999.99); got != 969.99 {
		t.Fatalf("DisbursedAmount(999.99) = %v, want 969.99", got)
	}
}

func TestEffectiveRate(t *testing.T) {
	if got := EffectiveRate(10.0); got != 9.7 {
		t.Fatalf("EffectiveRate(10) = %v, want 9.7", got)
	}
}

func TestNetReturn(t *testing.T) {
	// 1000 at nominal 10% over 12 months: 1000 × 9.7/100 × 1
	if got := NetReturn(1000, 10.0, 12); got != 97 {
		t.Fatalf("NetReturn = %v, want 97", got)
	}
	// half a year halves the return
	if got := NetReturn(1000, 10.0, 6); got != 48.5 {
		t.Fatalf("NetReturn = %v, want 48.5", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.005, 1.01}, // half away from zero, no float drift
		{1.004, 1.0},
		{-1.005, -1.01},
		{110.471, 110.47},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
