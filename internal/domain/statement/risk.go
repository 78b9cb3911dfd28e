package statement

// Risk score penalty weights and thresholds. The score is a deterministic
// heuristic: it starts at zero and accumulates a fixed penalty for each
// threshold crossed, capped at MaxRiskScore.
const (
	MaxRiskScore = 100

	largePurchaseThreshold = 0.10
	largePurchasePenalty   = 20

	frequencyThreshold = 2.0 // transactions per day
	frequencyPenalty   = 15

	utilizationThreshold = 0.5
	utilizationPenalty   = 25

	consistencyThreshold = 0.5
	consistencyPenalty   = 20

	recurringThreshold = 0.2
	recurringPenalty   = 10
)

// RiskScore maps a feature vector to a bounded risk score. Higher is riskier.
func RiskScore(f Features) int {
	score := 0
	if f.LargePurchaseFrequency > largePurchaseThreshold {
		score += largePurchasePenalty
	}
	if f.TransactionFrequency > frequencyThreshold {
		score += frequencyPenalty
	}
	if f.CreditUtilization > utilizationThreshold {
		score += utilizationPenalty
	}
	if f.PaymentConsistency < consistencyThreshold {
		score += consistencyPenalty
	}
	if f.RecurringTransactions < recurringThreshold {
		score += recurringPenalty
	}
	if score > MaxRiskScore {
		score = MaxRiskScore
	}
	return score
}
