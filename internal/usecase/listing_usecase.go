package usecase

import (
	"log/slog"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/metrics"
	listingdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/listing"
)

type ListingUsecase interface {
	CreateListing(input *listingdto.CreateListingInput) (*listingdto.ListingOutput, error)
	SubmitListing(listingID, actorID string) error
	ApproveListing(listingID, adminID string) error
	RejectListing(listingID, adminID, reason string) error
	ResubmitListing(listingID, actorID string) error
	ArchiveListing(listingID, actorID string) error

	GetListingByID(listingID string) (*listingdto.ListingOutput, error)
	GetSellerListings(input *listingdto.GetSellerListingsInput) ([]*listingdto.ListingOutput, int64, error)
	GetSellerQuota(sellerID string) (*listingdto.QuotaOutput, error)
}

type DefaultListingUsecase struct {
	ListingRepo domain.ListingRepository
	SellerRepo  domain.SellerRepository
	Publisher   domain.EventPublisher
	Metrics     *metrics.MarketplaceMetrics
}

func NewDefaultListingUsecase(
	listingRepo domain.ListingRepository,
	sellerRepo domain.SellerRepository,
	pub domain.EventPublisher,
	m *metrics.MarketplaceMetrics,
) *DefaultListingUsecase {
	return &DefaultListingUsecase{
		ListingRepo: listingRepo,
		SellerRepo:  sellerRepo,
		Publisher:   pub,
		Metrics:     m,
	}
}

func (uc *DefaultListingUsecase) publishListingEvent(event domain.ListingEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event domain.ListingEvent) {
		if err := uc.Publisher.PublishListingEvent(event); err != nil {
			slog.Error("failed to publish listing event", "listing_id", event.ListingID, "status", event.Status, "error", err.Error())
		}
	}(event)
}

// requireAdmin loads the actor's profile and checks the admin tier.
func requireAdmin(repo domain.SellerRepository, actorID string) error {
	actor, err := repo.GetSellerByID(actorID)
	if err != nil {
		return err
	}
	if actor.Tier != domain.TierAdmin {
		return domain.ErrAdminRoleRequired
	}
	return nil
}
