package mappers

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:               model.ID,
		ReferenceCode:    model.ReferenceCode,
		ListingID:        model.ListingID,
		BuyerID:          model.BuyerID,
		SellerID:         model.SellerID,
		Amount:           model.Amount,
		Currency:         model.Currency,
		CommissionRate:   model.CommissionRate,
		CommissionAmount: model.CommissionAmount,
		NetAmount:        model.NetAmount,
		Status:           model.Status,
		FailureReason:    model.FailureReason,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMTransaction(txn *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:               txn.ID,
		ReferenceCode:    txn.ReferenceCode,
		ListingID:        txn.ListingID,
		BuyerID:          txn.BuyerID,
		SellerID:         txn.SellerID,
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		CommissionRate:   txn.CommissionRate,
		CommissionAmount: txn.CommissionAmount,
		NetAmount:        txn.NetAmount,
		Status:           txn.Status,
		FailureReason:    txn.FailureReason,
		CreatedAt:        txn.CreatedAt,
		UpdatedAt:        txn.UpdatedAt,
	}
}
