package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	settlementdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/settlement"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// Settle runs a purchase: resolve the commission against the live fee
// policy, persist the transaction atomically with the listing's
// approved -> sold flip, then hand the buyer to the payment provider.
// If checkout initiation fails, the settlement is rolled back and the
// listing is purchasable again.
func (uc *DefaultSettlementUsecase) Settle(ctx context.Context, input *settlementdto.CheckoutInput) (*settlementdto.CheckoutOutput, error) {
	started := time.Now()

	listing, err := uc.ListingRepo.GetListingByID(input.ListingID)
	if err != nil {
		return nil, err
	}

	seller, err := uc.SellerRepo.GetSellerByID(listing.SellerID)
	if err != nil {
		return nil, err
	}

	// Fresh read every time: a closed zero-fee window must bite immediately.
	policy, err := uc.FeePolicyRepo.LoadFeePolicy()
	if err != nil {
		return nil, err
	}

	txn, err := domain.NewSettlement(listing, seller, input.BuyerID, *policy, time.Now())
	if err != nil {
		uc.recordSettlementError(err, listing.Currency)
		return nil, err
	}

	codeGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	txn.ID = uuid.New().String()
	txn.ReferenceCode = codeGenerator()

	if err := uc.TransactionRepo.SettleListing(txn); err != nil {
		if errors.Is(err, domain.ErrConcurrentPurchaseConflict) {
			uc.recordSettlementError(err, listing.Currency)
			slog.Info("purchase lost listing race", "listing_id", listing.ID, "buyer_id", input.BuyerID)
		}
		return nil, err
	}

	session, err := uc.Payment.InitiateCheckout(ctx, txn, listing)
	if err != nil {
		// No partial commission: cancel the settlement and release the listing.
		if _, cancelErr := uc.TransactionRepo.CancelPendingTransaction(txn.ID, "checkout initiation failed"); cancelErr != nil {
			slog.Error("failed to roll back settlement after checkout failure", "transaction_id", txn.ID, "error", cancelErr.Error())
		}
		if uc.Metrics != nil {
			uc.Metrics.SettlementsTotal.WithLabelValues("provider_failure", listing.Currency).Inc()
		}
		return nil, fmt.Errorf("initiating checkout: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.SettlementsTotal.WithLabelValues("settled", txn.Currency).Inc()
		amount, _ := txn.Amount.Float64()
		commission, _ := txn.CommissionAmount.Float64()
		uc.Metrics.SettlementAmountTotal.WithLabelValues(txn.Currency).Add(amount)
		uc.Metrics.SettlementCommissionTotal.WithLabelValues(txn.Currency, string(seller.Tier)).Add(commission)
		uc.Metrics.ListingsSoldTotal.WithLabelValues(string(seller.Tier), txn.Currency).Inc()
		uc.Metrics.SettlementDuration.WithLabelValues("settled").Observe(time.Since(started).Seconds())
	}
	slog.Info("listing settled",
		"listing_id", listing.ID,
		"transaction_id", txn.ID,
		"amount", txn.Amount.StringFixed(2),
		"commission", txn.CommissionAmount.StringFixed(2),
		"rate", txn.CommissionRate.String(),
	)

	uc.publishTransactionEvent(txn)

	return &settlementdto.CheckoutOutput{
		Transaction: settlementdto.ToTransactionOutput(txn),
		RedirectURL: session.RedirectURL,
	}, nil
}

func (uc *DefaultSettlementUsecase) recordSettlementError(err error, currency string) {
	if uc.Metrics == nil {
		return
	}
	switch {
	case errors.Is(err, domain.ErrConcurrentPurchaseConflict):
		uc.Metrics.SettlementConflictsTotal.WithLabelValues(currency).Inc()
	case errors.Is(err, domain.ErrSelfPurchaseForbidden):
		uc.Metrics.ErrorsTotal.WithLabelValues("settle", "self_purchase").Inc()
	case errors.Is(err, domain.ErrInvalidTransition):
		uc.Metrics.ErrorsTotal.WithLabelValues("settle", "invalid_transition").Inc()
	}
}
