package gatewaymock

import (
	"context"
	"errors"
	"sync"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
)

// Ensure compile-time compliance
var (
	_ gateway.PaymentGateway = (*Gateway)(nil)
	_ gateway.Notifier       = (*Notifier)(nil)
)

var errUnimplemented = errors.New("gatewaymock: method not implemented")

// Gateway is a function-backed mock for gateway.PaymentGateway.
type Gateway struct {
	CreateCheckoutFn func(ctx context.Context, customerID string, amount float64, correlationID string) (gateway.Checkout, error)
	RetrieveStatusFn func(ctx context.Context, paymentID string) (gateway.CheckoutStatus, error)
	TransferFn       func(ctx context.Context, amount float64, destinationAccount string) error
	PayoutFn         func(ctx context.Context, amount float64, destinationAccount string) error
}

func (m *Gateway) CreateCheckout(ctx context.Context, customerID string, amount float64, correlationID string) (gateway.Checkout, error) {
	if m.CreateCheckoutFn != nil {
		return m.CreateCheckoutFn(ctx, customerID, amount, correlationID)
	}
	return gateway.Checkout{}, errUnimplemented
}
func (m *Gateway) RetrieveStatus(ctx context.Context, paymentID string) (gateway.CheckoutStatus, error) {
	if m.RetrieveStatusFn != nil {
		return m.RetrieveStatusFn(ctx, paymentID)
	}
	return gateway.CheckoutStatus{}, errUnimplemented
}
func (m *Gateway) Transfer(ctx context.Context, amount float64, destinationAccount string) error {
	if m.TransferFn != nil {
		return m.TransferFn(ctx, amount, destinationAccount)
	}
	return nil
}
func (m *Gateway) Payout(ctx context.Context, amount float64, destinationAccount string) error {
	if m.PayoutFn != nil {
		return m.PayoutFn(ctx, amount, destinationAccount)
	}
	return nil
}

// Notifier records notifications for assertion.
type Notifier struct {
	mu     sync.Mutex
	Events []string
}

func (n *Notifier) Notify(userID, event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, userID+": "+event)
}
