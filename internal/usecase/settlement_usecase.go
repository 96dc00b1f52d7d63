package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/metrics"
	settlementdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/settlement"
)

type SettlementUsecase interface {
	Settle(ctx context.Context, input *settlementdto.CheckoutInput) (*settlementdto.CheckoutOutput, error)

	OnPaymentCompleted(txnID string) error
	OnPaymentFailed(txnID, reason string) error

	MarkShipped(txnID string) error
	MarkDelivered(txnID string) error
	CompleteTransaction(txnID string) error
	OpenDispute(txnID, reason string) error
	RefundTransaction(txnID string) error

	ReleaseExpiredCheckouts(ctx context.Context, ttl time.Duration) error

	GetTransactionByID(txnID string) (*settlementdto.TransactionOutput, error)
	GetSellerTransactions(sellerID string, page, limit int64) ([]*settlementdto.TransactionOutput, int64, error)
	GetBuyerTransactions(buyerID string, page, limit int64) ([]*settlementdto.TransactionOutput, int64, error)
}

type DefaultSettlementUsecase struct {
	ListingRepo     domain.ListingRepository
	SellerRepo      domain.SellerRepository
	TransactionRepo domain.TransactionRepository
	FeePolicyRepo   domain.FeePolicyRepository
	Payment         domain.PaymentProvider
	Publisher       domain.EventPublisher
	Metrics         *metrics.MarketplaceMetrics
}

func NewDefaultSettlementUsecase(
	listingRepo domain.ListingRepository,
	sellerRepo domain.SellerRepository,
	transactionRepo domain.TransactionRepository,
	feePolicyRepo domain.FeePolicyRepository,
	payment domain.PaymentProvider,
	pub domain.EventPublisher,
	m *metrics.MarketplaceMetrics,
) *DefaultSettlementUsecase {
	return &DefaultSettlementUsecase{
		ListingRepo:     listingRepo,
		SellerRepo:      sellerRepo,
		TransactionRepo: transactionRepo,
		FeePolicyRepo:   feePolicyRepo,
		Payment:         payment,
		Publisher:       pub,
		Metrics:         m,
	}
}

func (uc *DefaultSettlementUsecase) publishTransactionEvent(txn *domain.Transaction) {
	if uc.Publisher == nil {
		return
	}
	event := domain.TransactionEvent{
		TransactionID: txn.ID,
		ListingID:     txn.ListingID,
		BuyerID:       txn.BuyerID,
		SellerID:      txn.SellerID,
		Status:        string(txn.Status),
		Amount:        txn.Amount.StringFixed(2),
		Commission:    txn.CommissionAmount.StringFixed(2),
		Currency:      txn.Currency,
	}
	go func(event domain.TransactionEvent) {
		if err := uc.Publisher.PublishTransactionEvent(event); err != nil {
			slog.Error("failed to publish transaction event", "transaction_id", event.TransactionID, "status", event.Status, "error", err.Error())
		}
	}(event)
}
