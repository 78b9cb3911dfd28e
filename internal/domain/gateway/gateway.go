package gateway

import (
	"context"
	"errors"
)

// ErrGateway wraps any failure from the external payment provider. Callers
// surface it; they never guess at partial outcomes.
var ErrGateway = errors.New("payment gateway error")

// StatusComplete is the provider's terminal success state for a checkout.
const StatusComplete = "complete"

// Checkout is a hosted payment link the client completes out-of-band.
type Checkout struct {
	ID  string
	URL string
}

// CheckoutStatus is the provider's view of a checkout. AmountTotal is in the
// provider's minor unit (cents).
type CheckoutStatus struct {
	Status      string
	AmountTotal int64
}

// PaymentGateway is the external payment-processor collaborator. All calls
// are blocking I/O; implementations own their timeouts and retries.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, customerID string, amount float64, correlationID string) (Checkout, error)
	RetrieveStatus(ctx context.Context, paymentID string) (CheckoutStatus, error)
	Transfer(ctx context.Context, amount float64, destinationAccount string) error
	Payout(ctx context.Context, amount float64, destinationAccount string) error
}

// Notifier is fire-and-forget; delivery failures never affect ledger
// correctness.
type Notifier interface {
	Notify(userID, event string)
}
