// Package notify carries the fire-and-forget notification collaborator.
// Delivery is observational only; nothing in the ledger depends on it.
package notify

import (
	"log"

	"github.com/nimeshpoudel7/enhancefund/internal/domain/gateway"
)

// LogNotifier writes events to the service log. Swap in a real fan-out
// (email, push) behind the same interface.
type LogNotifier struct{}

var _ gateway.Notifier = LogNotifier{}

func (LogNotifier) Notify(userID, event string) {
	log.Printf("notify user=%s event=%s", userID, event)
}
