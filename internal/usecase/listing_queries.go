package usecase

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	listingdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/listing"
)

func (uc *DefaultListingUsecase) GetListingByID(listingID string) (*listingdto.ListingOutput, error) {
	listing, err := uc.ListingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	return listingdto.ToListingOutput(listing), nil
}

func (uc *DefaultListingUsecase) GetSellerListings(input *listingdto.GetSellerListingsInput) ([]*listingdto.ListingOutput, int64, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	listings, total, err := uc.ListingRepo.GetListingsBySellerID(input.SellerID, page, limit, input.Statuses)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*listingdto.ListingOutput, len(listings))
	for i, listing := range listings {
		outputs[i] = listingdto.ToListingOutput(listing)
	}
	return outputs, total, nil
}

func (uc *DefaultListingUsecase) GetSellerQuota(sellerID string) (*listingdto.QuotaOutput, error) {
	seller, err := uc.SellerRepo.GetSellerByID(sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.Tier.CanSell() {
		return &listingdto.QuotaOutput{
			SellerID: sellerID,
			Tier:     string(seller.Tier),
		}, nil
	}

	activeCount, err := uc.ListingRepo.CountActiveListings(sellerID)
	if err != nil {
		return nil, err
	}

	limit := domain.ListingLimitFor(seller.Tier)
	remaining := int64(-1)
	if limit != domain.UnlimitedListings {
		remaining = int64(limit) - activeCount
		if remaining < 0 {
			remaining = 0
		}
	}

	return &listingdto.QuotaOutput{
		SellerID:    sellerID,
		Tier:        string(seller.Tier),
		Limit:       limit,
		ActiveCount: activeCount,
		Remaining:   remaining,
		Allowed:     CanCreateListing(seller, activeCount),
	}, nil
}
