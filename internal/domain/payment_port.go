package domain

import "context"

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// PaymentProvider is the external checkout collaborator. Completion and
// failure arrive asynchronously through the payment webhook.
type PaymentProvider interface {
	InitiateCheckout(ctx context.Context, txn *Transaction, listing *Listing) (*CheckoutSession, error)
}
