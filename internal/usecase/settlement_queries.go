package usecase

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	settlementdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/settlement"
)

func normalizePage(page int64) int64 {
	if page < 1 {
		return 1
	}
	return page
}

func normalizeLimit(limit int64) int64 {
	if limit < 1 || limit > 100 {
		return 20
	}
	return limit
}

func toTransactionOutputs(txns []*domain.Transaction) []*settlementdto.TransactionOutput {
	outputs := make([]*settlementdto.TransactionOutput, len(txns))
	for i, txn := range txns {
		outputs[i] = settlementdto.ToTransactionOutput(txn)
	}
	return outputs
}

func (uc *DefaultSettlementUsecase) GetTransactionByID(txnID string) (*settlementdto.TransactionOutput, error) {
	txn, err := uc.TransactionRepo.GetTransactionByID(txnID)
	if err != nil {
		return nil, err
	}
	return settlementdto.ToTransactionOutput(txn), nil
}

func (uc *DefaultSettlementUsecase) GetSellerTransactions(sellerID string, page, limit int64) ([]*settlementdto.TransactionOutput, int64, error) {
	txns, total, err := uc.TransactionRepo.GetTransactionsBySellerID(sellerID, normalizePage(page), normalizeLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	return toTransactionOutputs(txns), total, nil
}

func (uc *DefaultSettlementUsecase) GetBuyerTransactions(buyerID string, page, limit int64) ([]*settlementdto.TransactionOutput, int64, error) {
	txns, total, err := uc.TransactionRepo.GetTransactionsByBuyerID(buyerID, normalizePage(page), normalizeLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	return toTransactionOutputs(txns), total, nil
}
