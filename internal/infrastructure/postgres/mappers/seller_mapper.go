package mappers

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainSeller(model *models.SellerProfileModel) *domain.SellerProfile {
	return &domain.SellerProfile{
		ID:              model.ID,
		DisplayName:     model.DisplayName,
		Tier:            model.Tier,
		ZeroFeeEligible: model.ZeroFeeEligible,
		KYCStatus:       model.KYCStatus,
		KYCVerifiedAt:   model.KYCVerifiedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMSeller(seller *domain.SellerProfile) *models.SellerProfileModel {
	return &models.SellerProfileModel{
		ID:              seller.ID,
		DisplayName:     seller.DisplayName,
		Tier:            seller.Tier,
		ZeroFeeEligible: seller.ZeroFeeEligible,
		KYCStatus:       seller.KYCStatus,
		KYCVerifiedAt:   seller.KYCVerifiedAt,
		CreatedAt:       seller.CreatedAt,
		UpdatedAt:       seller.UpdatedAt,
	}
}
