package repository

import (
	"errors"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSellerRepository struct {
	DB *gorm.DB
}

func NewDefaultSellerRepository(db *gorm.DB) *DefaultSellerRepository {
	return &DefaultSellerRepository{DB: db}
}

func (r *DefaultSellerRepository) CreateSeller(seller *domain.SellerProfile) error {
	sellerModel := mappers.ToGORMSeller(seller)
	if err := r.DB.Create(sellerModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultSellerRepository) GetSellerByID(sellerID string) (*domain.SellerProfile, error) {
	var seller models.SellerProfileModel
	if err := r.DB.First(&seller, "id = ?", sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, err
	}

	return mappers.ToDomainSeller(&seller), nil
}

func (r *DefaultSellerRepository) UpdateSellerTier(sellerID string, tier domain.SellerTier) error {
	return r.updateSeller(sellerID, map[string]interface{}{"tier": tier})
}

func (r *DefaultSellerRepository) SetZeroFeeEligible(sellerID string, eligible bool) error {
	return r.updateSeller(sellerID, map[string]interface{}{"zero_fee_eligible": eligible})
}

func (r *DefaultSellerRepository) UpdateKYCStatus(sellerID string, status domain.KYCStatus, verifiedAt *time.Time) error {
	return r.updateSeller(sellerID, map[string]interface{}{
		"kyc_status":      status,
		"kyc_verified_at": verifiedAt,
	})
}

func (r *DefaultSellerRepository) updateSeller(sellerID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.DB.Model(&models.SellerProfileModel{}).
		Where("id = ?", sellerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSellerNotFound
	}
	return nil
}
