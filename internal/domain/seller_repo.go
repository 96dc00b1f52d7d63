package domain

import "time"

type SellerRepository interface {
	CreateSeller(seller *SellerProfile) error
	GetSellerByID(sellerID string) (*SellerProfile, error)
	UpdateSellerTier(sellerID string, tier SellerTier) error
	SetZeroFeeEligible(sellerID string, eligible bool) error
	UpdateKYCStatus(sellerID string, status KYCStatus, verifiedAt *time.Time) error
}
