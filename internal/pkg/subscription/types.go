package subscription

import "errors"

// Denial reasons reported by the entitlement gate. NO_SUBSCRIPTION and EXPIRED
// deny identically but warrant different client messaging (upsell vs renewal).
const (
	ReasonNoSubscription = "NO_SUBSCRIPTION"
	ReasonExpired        = "EXPIRED"
	ReasonNoCredits      = "NO_CREDITS"
)

var (
	// ErrPlanNotFound means the requested plan id is not in the catalog.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrDuplicatePayment means the gateway payment id was already recorded.
	// The store's unique index is the authoritative replay signal; a rejected
	// insert must leave all rows untouched.
	ErrDuplicatePayment = errors.New("duplicate payment")

	// ErrNoCredits means a metered grant has no AI credits left.
	ErrNoCredits = errors.New("no ai credits remaining")
)

// PaymentAttempt carries the verified gateway callback fields into activation.
type PaymentAttempt struct {
	OrderID   string
	PaymentID string
	Signature string
}
