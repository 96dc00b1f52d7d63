package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

// OnPaymentCompleted is the webhook trigger for pending_payment ->
// payment_held. Once held, the listing is locked for good.
func (uc *DefaultSettlementUsecase) OnPaymentCompleted(txnID string) error {
	ok, err := uc.TransactionRepo.UpdateTransactionStatusIf(txnID, domain.TxPendingPayment, domain.TxPaymentHeld, "")
	if err != nil {
		return err
	}
	if !ok {
		// Duplicate webhook or a checkout already cancelled.
		return domain.ErrInvalidTransition
	}

	if uc.Metrics != nil {
		uc.Metrics.PaymentOutcomesTotal.WithLabelValues("completed").Inc()
	}
	slog.Info("payment captured", "transaction_id", txnID)

	if txn, err := uc.TransactionRepo.GetTransactionByID(txnID); err == nil {
		uc.publishTransactionEvent(txn)
	}
	return nil
}

// OnPaymentFailed cancels the settlement and releases the listing back
// to approved, atomically. The commission recorded on the cancelled
// transaction never counts.
func (uc *DefaultSettlementUsecase) OnPaymentFailed(txnID, reason string) error {
	cancelled, err := uc.TransactionRepo.CancelPendingTransaction(txnID, reason)
	if err != nil {
		return err
	}
	if !cancelled {
		return domain.ErrInvalidTransition
	}

	if uc.Metrics != nil {
		uc.Metrics.PaymentOutcomesTotal.WithLabelValues("failed").Inc()
	}
	slog.Info("payment failed, listing released", "transaction_id", txnID, "reason", reason)

	if txn, err := uc.TransactionRepo.GetTransactionByID(txnID); err == nil {
		uc.publishTransactionEvent(txn)
	}
	return nil
}

// ReleaseExpiredCheckouts cancels settlements whose buyers never
// finished paying, so their listings do not stay locked forever.
func (uc *DefaultSettlementUsecase) ReleaseExpiredCheckouts(ctx context.Context, ttl time.Duration) error {
	expired, err := uc.TransactionRepo.FindExpiredPendingTransactions(time.Now().Add(-ttl))
	if err != nil {
		return err
	}

	for _, txn := range expired {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		cancelled, err := uc.TransactionRepo.CancelPendingTransaction(txn.ID, "checkout expired")
		if err != nil {
			slog.Error("failed to cancel expired checkout", "transaction_id", txn.ID, "error", err.Error())
			continue
		}
		if cancelled {
			if uc.Metrics != nil {
				uc.Metrics.PaymentOutcomesTotal.WithLabelValues("expired").Inc()
			}
			slog.Info("expired checkout released", "transaction_id", txn.ID, "listing_id", txn.ListingID)
		}
	}
	return nil
}
