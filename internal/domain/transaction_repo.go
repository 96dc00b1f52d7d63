package domain

import "time"

type TransactionRepository interface {
	// SettleListing persists the transaction and flips its listing from
	// approved to sold in a single database transaction. Exactly one
	// concurrent caller wins; the rest get ErrConcurrentPurchaseConflict.
	SettleListing(txn *Transaction) error

	GetTransactionByID(txnID string) (*Transaction, error)
	GetTransactionsBySellerID(sellerID string, page, limit int64) ([]*Transaction, int64, error)
	GetTransactionsByBuyerID(buyerID string, page, limit int64) ([]*Transaction, int64, error)

	// UpdateTransactionStatusIf is a conditional update guarded on the
	// current status. Returns false when the guard did not match.
	UpdateTransactionStatusIf(txnID string, from, to TransactionStatus, failureReason string) (bool, error)

	// CancelPendingTransaction cancels a pending_payment transaction and
	// releases its listing back to approved, atomically.
	CancelPendingTransaction(txnID, reason string) (bool, error)

	FindExpiredPendingTransactions(olderThan time.Time) ([]*Transaction, error)
}
