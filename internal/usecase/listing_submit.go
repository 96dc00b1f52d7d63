package usecase

import (
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

// SubmitListing moves an owned draft into the review queue. Gated on
// verified KYC, the required photo set, and the tier quota.
func (uc *DefaultListingUsecase) SubmitListing(listingID, actorID string) error {
	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != actorID {
		return domain.ErrNotListingOwner
	}

	seller, err := uc.SellerRepo.GetSellerByID(listing.SellerID)
	if err != nil {
		return err
	}
	if seller.KYCStatus != domain.KYCVerified {
		return domain.ErrVerificationRequired
	}
	if listing.PhotoCount < domain.MinListingPhotos {
		return domain.ErrPhotoSetIncomplete
	}

	activeCount, err := uc.ListingRepo.CountActiveListings(listing.SellerID)
	if err != nil {
		return err
	}
	if !CanCreateListing(seller, activeCount-1) {
		// The draft itself is active; it must fit within the quota on its own.
		return domain.ErrQuotaExceeded
	}

	ok, err := uc.ListingRepo.SubmitListing(listingID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	if uc.Metrics != nil {
		uc.Metrics.ListingsSubmittedTotal.WithLabelValues(string(seller.Tier)).Inc()
	}
	slog.Info("listing submitted for review", "listing_id", listingID, "seller_id", listing.SellerID)

	uc.publishListingEvent(domain.ListingEvent{
		ListingID:     listing.ID,
		ReferenceCode: listing.ReferenceCode,
		SellerID:      listing.SellerID,
		Status:        string(domain.ListingPendingReview),
	})

	return nil
}
