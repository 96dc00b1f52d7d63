package usecase

import (
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

func (uc *DefaultListingUsecase) ApproveListing(listingID, adminID string) error {
	if err := requireAdmin(uc.SellerRepo, adminID); err != nil {
		return err
	}

	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}

	ok, err := uc.ListingRepo.ApproveListing(listingID, adminID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		// Already reviewed, sold, or withdrawn since the admin loaded it.
		return domain.ErrInvalidTransition
	}

	uc.recordReviewMetrics(listing.SellerID, true)
	slog.Info("listing approved", "listing_id", listingID, "admin_id", adminID)

	uc.publishListingEvent(domain.ListingEvent{
		ListingID:     listing.ID,
		ReferenceCode: listing.ReferenceCode,
		SellerID:      listing.SellerID,
		Status:        string(domain.ListingApproved),
	})

	return nil
}

func (uc *DefaultListingUsecase) RejectListing(listingID, adminID, reason string) error {
	if err := requireAdmin(uc.SellerRepo, adminID); err != nil {
		return err
	}

	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}

	ok, err := uc.ListingRepo.RejectListing(listingID, reason)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	uc.recordReviewMetrics(listing.SellerID, false)
	slog.Info("listing rejected", "listing_id", listingID, "admin_id", adminID, "reason", reason)

	uc.publishListingEvent(domain.ListingEvent{
		ListingID:     listing.ID,
		ReferenceCode: listing.ReferenceCode,
		SellerID:      listing.SellerID,
		Status:        string(domain.ListingRejected),
		Reason:        reason,
	})

	return nil
}

// ResubmitListing returns a rejected listing to draft, clearing the
// previous review's traces so the next one starts clean.
func (uc *DefaultListingUsecase) ResubmitListing(listingID, actorID string) error {
	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != actorID {
		return domain.ErrNotListingOwner
	}

	ok, err := uc.ListingRepo.ResubmitListing(listingID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	slog.Info("listing resubmitted to draft", "listing_id", listingID, "seller_id", actorID)
	return nil
}

func (uc *DefaultListingUsecase) recordReviewMetrics(sellerID string, approved bool) {
	if uc.Metrics == nil {
		return
	}
	tier := "unknown"
	if seller, err := uc.SellerRepo.GetSellerByID(sellerID); err == nil {
		tier = string(seller.Tier)
	}
	if approved {
		uc.Metrics.ListingsApprovedTotal.WithLabelValues(tier).Inc()
	} else {
		uc.Metrics.ListingsRejectedTotal.WithLabelValues(tier).Inc()
	}
}
