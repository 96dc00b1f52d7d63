package usecase

import (
	"log/slog"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

func (uc *DefaultSettlementUsecase) MarkShipped(txnID string) error {
	return uc.advance(txnID, domain.TxPaymentHeld, domain.TxShipped, "")
}

func (uc *DefaultSettlementUsecase) MarkDelivered(txnID string) error {
	return uc.advance(txnID, domain.TxShipped, domain.TxDelivered, "")
}

func (uc *DefaultSettlementUsecase) CompleteTransaction(txnID string) error {
	txn, err := uc.TransactionRepo.GetTransactionByID(txnID)
	if err != nil {
		return err
	}
	// Completion also closes a dispute resolved in the seller's favor.
	if !txn.Status.CanTransitionTo(domain.TxCompleted) {
		return domain.ErrInvalidTransition
	}
	return uc.advance(txnID, txn.Status, domain.TxCompleted, "")
}

// OpenDispute is reachable from any post-capture, pre-completion state.
func (uc *DefaultSettlementUsecase) OpenDispute(txnID, reason string) error {
	txn, err := uc.TransactionRepo.GetTransactionByID(txnID)
	if err != nil {
		return err
	}
	if !txn.Status.CanTransitionTo(domain.TxDisputed) {
		return domain.ErrInvalidTransition
	}
	return uc.advance(txnID, txn.Status, domain.TxDisputed, reason)
}

func (uc *DefaultSettlementUsecase) RefundTransaction(txnID string) error {
	return uc.advance(txnID, domain.TxDisputed, domain.TxRefunded, "")
}

func (uc *DefaultSettlementUsecase) advance(txnID string, from, to domain.TransactionStatus, reason string) error {
	ok, err := uc.TransactionRepo.UpdateTransactionStatusIf(txnID, from, to, reason)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	slog.Info("transaction advanced", "transaction_id", txnID, "from", from, "to", to)

	if txn, err := uc.TransactionRepo.GetTransactionByID(txnID); err == nil {
		uc.publishTransactionEvent(txn)
	}
	return nil
}
