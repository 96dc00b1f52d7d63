package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TxPendingPayment TransactionStatus = "pending_payment"
	TxPaymentHeld    TransactionStatus = "payment_held"
	TxShipped        TransactionStatus = "shipped"
	TxDelivered      TransactionStatus = "delivered"
	TxCompleted      TransactionStatus = "completed"
	TxDisputed       TransactionStatus = "disputed"
	TxRefunded       TransactionStatus = "refunded"
	TxCancelled      TransactionStatus = "cancelled"
)

// Transaction is the durable record of a settlement. Amount and
// commission are fixed at creation and never recomputed from the
// listing's later state.
type Transaction struct {
	ID               string
	ReferenceCode    string
	ListingID        string
	BuyerID          string
	SellerID         string
	Amount           decimal.Decimal
	Currency         string
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
	NetAmount        decimal.Decimal
	Status           TransactionStatus
	FailureReason    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var transactionTransitions = map[TransactionStatus]map[TransactionStatus]bool{
	TxPendingPayment: {
		TxPaymentHeld: true,
		TxCancelled:   true,
	},
	TxPaymentHeld: {
		TxShipped:  true,
		TxDisputed: true,
	},
	TxShipped: {
		TxDelivered: true,
		TxDisputed:  true,
	},
	TxDelivered: {
		TxCompleted: true,
		TxDisputed:  true,
	},
	TxDisputed: {
		TxRefunded:  true,
		TxCompleted: true,
	},
}

func (s TransactionStatus) CanTransitionTo(to TransactionStatus) bool {
	return transactionTransitions[s][to]
}

func (s TransactionStatus) Terminal() bool {
	return s == TxCompleted || s == TxRefunded || s == TxCancelled
}

// Settled reports whether the buyer's money has been captured, i.e. the
// transaction passed pending_payment and locked the listing for good.
func (s TransactionStatus) Settled() bool {
	return s != TxPendingPayment && s != TxCancelled
}
