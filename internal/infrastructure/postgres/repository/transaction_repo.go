package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// SettleListing flips the listing approved -> sold and inserts the
// transaction in one database transaction. The status-guarded UPDATE is
// the purchase mutex: the first committer wins, every other concurrent
// attempt matches zero rows and gets ErrConcurrentPurchaseConflict.
func (r *DefaultTransactionRepository) SettleListing(txn *domain.Transaction) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ListingModel{}).
			Where("id = ? AND status = ?", txn.ListingID, domain.ListingApproved).
			Updates(map[string]interface{}{
				"status":     domain.ListingSold,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConcurrentPurchaseConflict
		}

		txnModel := mappers.ToGORMTransaction(txn)
		if err := tx.Create(txnModel).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *DefaultTransactionRepository) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	var txn models.TransactionModel
	if err := r.DB.First(&txn, "id = ?", txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&txn), nil
}

func (r *DefaultTransactionRepository) GetTransactionsBySellerID(sellerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	return r.getTransactionsBy("seller_id", sellerID, page, limit)
}

func (r *DefaultTransactionRepository) GetTransactionsByBuyerID(buyerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	return r.getTransactionsBy("buyer_id", buyerID, page, limit)
}

func (r *DefaultTransactionRepository) getTransactionsBy(column, userID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	var txnModels []models.TransactionModel
	var total int64

	baseQuery := r.DB.Model(&models.TransactionModel{}).Where(fmt.Sprintf("%s = ?", column), userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, total, nil
}

func (r *DefaultTransactionRepository) UpdateTransactionStatusIf(txnID string, from, to domain.TransactionStatus, failureReason string) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if failureReason != "" {
		updates["failure_reason"] = failureReason
	}
	result := r.DB.Model(&models.TransactionModel{}).
		Where("id = ? AND status = ?", txnID, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CancelPendingTransaction cancels a pending_payment transaction and
// releases its listing back to approved. Both writes commit together or
// not at all, so an abandoned checkout never leaves a half-settled pair.
func (r *DefaultTransactionRepository) CancelPendingTransaction(txnID, reason string) (bool, error) {
	cancelled := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var txnModel models.TransactionModel
		if err := tx.First(&txnModel, "id = ?", txnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return err
		}

		result := tx.Model(&models.TransactionModel{}).
			Where("id = ? AND status = ?", txnID, domain.TxPendingPayment).
			Updates(map[string]interface{}{
				"status":         domain.TxCancelled,
				"failure_reason": reason,
				"updated_at":     time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Model(&models.ListingModel{}).
			Where("id = ? AND status = ?", txnModel.ListingID, domain.ListingSold).
			Updates(map[string]interface{}{
				"status":     domain.ListingApproved,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		cancelled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return cancelled, nil
}

func (r *DefaultTransactionRepository) FindExpiredPendingTransactions(olderThan time.Time) ([]*domain.Transaction, error) {
	var txnModels []models.TransactionModel
	if err := r.DB.
		Where("status = ?", domain.TxPendingPayment).
		Where("created_at < ?", olderThan).
		Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, nil
}
