package usecase

import (
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	listingdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/listing"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// CanCreateListing is the quota gate: active listings (draft,
// pending_review, approved) against the tier limit. Unknown tiers and
// non-selling tiers are denied.
func CanCreateListing(seller *domain.SellerProfile, currentActiveCount int64) bool {
	if !seller.Tier.CanSell() {
		return false
	}
	limit := domain.ListingLimitFor(seller.Tier)
	if limit == domain.UnlimitedListings {
		return true
	}
	return currentActiveCount < int64(limit)
}

func (uc *DefaultListingUsecase) CreateListing(input *listingdto.CreateListingInput) (*listingdto.ListingOutput, error) {
	seller, err := uc.SellerRepo.GetSellerByID(input.SellerID)
	if err != nil {
		// Fail closed: no profile, no listing.
		return nil, err
	}
	if !seller.Tier.CanSell() {
		return nil, domain.ErrTierCannotSell
	}
	if !input.AskingPrice.IsPositive() {
		return nil, domain.ErrInvalidAskingPrice
	}
	if !input.Condition.Valid() {
		return nil, domain.ErrInvalidCondition
	}

	activeCount, err := uc.ListingRepo.CountActiveListings(input.SellerID)
	if err != nil {
		// Fail closed: an unavailable count never admits an over-quota listing.
		return nil, err
	}
	if !CanCreateListing(seller, activeCount) {
		if uc.Metrics != nil {
			uc.Metrics.QuotaDeniedTotal.WithLabelValues(string(seller.Tier)).Inc()
		}
		return nil, domain.ErrQuotaExceeded
	}

	codeGenerator, err := nanoid.Standard(12)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	listing := &domain.Listing{
		ID:              uuid.New().String(),
		ReferenceCode:   codeGenerator(),
		SellerID:        input.SellerID,
		Brand:           input.Brand,
		Model:           input.Model,
		ReferenceNumber: input.ReferenceNumber,
		Condition:       input.Condition,
		AskingPrice:     input.AskingPrice,
		Currency:        input.Currency,
		PhotoCount:      input.PhotoCount,
		Status:          domain.ListingDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.ListingRepo.CreateListing(listing); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.ListingsCreatedTotal.WithLabelValues(string(seller.Tier)).Inc()
	}
	slog.Info("listing created", "listing_id", listing.ID, "seller_id", seller.ID, "tier", seller.Tier)

	return listingdto.ToListingOutput(listing), nil
}
