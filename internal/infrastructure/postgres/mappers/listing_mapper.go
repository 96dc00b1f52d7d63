package mappers

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainListing(model *models.ListingModel) *domain.Listing {
	return &domain.Listing{
		ID:              model.ID,
		ReferenceCode:   model.ReferenceCode,
		SellerID:        model.SellerID,
		Brand:           model.Brand,
		Model:           model.Model,
		ReferenceNumber: model.ReferenceNumber,
		Condition:       model.Condition,
		AskingPrice:     model.AskingPrice,
		Currency:        model.Currency,
		PhotoCount:      model.PhotoCount,
		Status:          model.Status,
		RejectedReason:  model.RejectedReason,
		ApprovedAt:      model.ApprovedAt,
		ApprovedBy:      model.ApprovedBy,
		SubmittedAt:     model.SubmittedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMListing(listing *domain.Listing) *models.ListingModel {
	return &models.ListingModel{
		ID:              listing.ID,
		ReferenceCode:   listing.ReferenceCode,
		SellerID:        listing.SellerID,
		Brand:           listing.Brand,
		Model:           listing.Model,
		ReferenceNumber: listing.ReferenceNumber,
		Condition:       listing.Condition,
		AskingPrice:     listing.AskingPrice,
		Currency:        listing.Currency,
		PhotoCount:      listing.PhotoCount,
		Status:          listing.Status,
		RejectedReason:  listing.RejectedReason,
		ApprovedAt:      listing.ApprovedAt,
		ApprovedBy:      listing.ApprovedBy,
		SubmittedAt:     listing.SubmittedAt,
		CreatedAt:       listing.CreatedAt,
		UpdatedAt:       listing.UpdatedAt,
	}
}
