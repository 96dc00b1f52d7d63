package models

import (
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type SellerProfileModel struct {
	ID              string            `gorm:"primaryKey;type:uuid"`
	DisplayName     string            `gorm:"not null"`
	Tier            domain.SellerTier `gorm:"not null;default:'buyer';index:idx_seller_tier"`
	ZeroFeeEligible bool              `gorm:"not null;default:false"`
	KYCStatus       domain.KYCStatus  `gorm:"not null;default:'not_started'"`
	KYCVerifiedAt   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}
