package usecase

import (
	"log/slog"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

// ArchiveListing withdraws a listing. Permitted to the owner and to
// admins, from any non-terminal state.
func (uc *DefaultListingUsecase) ArchiveListing(listingID, actorID string) error {
	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}

	if listing.SellerID != actorID {
		if err := requireAdmin(uc.SellerRepo, actorID); err != nil {
			return domain.ErrNotListingOwner
		}
	}

	ok, err := uc.ListingRepo.ArchiveListing(listingID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}

	if uc.Metrics != nil {
		tier := "unknown"
		if seller, err := uc.SellerRepo.GetSellerByID(listing.SellerID); err == nil {
			tier = string(seller.Tier)
		}
		uc.Metrics.ListingsArchivedTotal.WithLabelValues(tier).Inc()
	}
	slog.Info("listing archived", "listing_id", listingID, "actor_id", actorID)

	uc.publishListingEvent(domain.ListingEvent{
		ListingID:     listing.ID,
		ReferenceCode: listing.ReferenceCode,
		SellerID:      listing.SellerID,
		Status:        string(domain.ListingArchived),
	})

	return nil
}
