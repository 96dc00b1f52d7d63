package repository

import (
	"errors"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

const platformSettingsRowID = 1

// DefaultFeePolicyRepository reads the policy row on every call. No
// in-process cache: a closed zero-fee window must be visible to the
// very next settlement.
type DefaultFeePolicyRepository struct {
	DB *gorm.DB
}

func NewDefaultFeePolicyRepository(db *gorm.DB) *DefaultFeePolicyRepository {
	return &DefaultFeePolicyRepository{DB: db}
}

func (r *DefaultFeePolicyRepository) LoadFeePolicy() (*domain.PlatformFeePolicy, error) {
	var settings models.PlatformSettingsModel
	if err := r.DB.First(&settings, "id = ?", platformSettingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No admin has touched the settings yet: fees apply at tier rates.
			return &domain.PlatformFeePolicy{}, nil
		}
		return nil, err
	}

	return &domain.PlatformFeePolicy{
		ZeroFeeActive:  settings.ZeroFeeActive,
		ZeroFeeEndDate: settings.ZeroFeeEndDate,
		UpdatedBy:      settings.UpdatedBy,
		UpdatedAt:      settings.UpdatedAt,
	}, nil
}

func (r *DefaultFeePolicyRepository) SaveFeePolicy(policy *domain.PlatformFeePolicy) error {
	settings := models.PlatformSettingsModel{
		ID:             platformSettingsRowID,
		ZeroFeeActive:  policy.ZeroFeeActive,
		ZeroFeeEndDate: policy.ZeroFeeEndDate,
		UpdatedBy:      policy.UpdatedBy,
		UpdatedAt:      time.Now(),
	}
	return r.DB.Save(&settings).Error
}
