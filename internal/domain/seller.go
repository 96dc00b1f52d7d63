package domain

import "time"

type SellerTier string

const (
	TierBuyer            SellerTier = "buyer"
	TierPrivateHolder    SellerTier = "private_holder"
	TierVerifiedDealer   SellerTier = "verified_dealer"
	TierCertifiedPartner SellerTier = "certified_partner"
	TierAdmin            SellerTier = "admin"
)

type KYCStatus string

const (
	KYCNotStarted KYCStatus = "not_started"
	KYCPending    KYCStatus = "pending"
	KYCVerified   KYCStatus = "verified"
	KYCRejected   KYCStatus = "rejected"
)

type SellerProfile struct {
	ID              string
	DisplayName     string
	Tier            SellerTier
	ZeroFeeEligible bool
	KYCStatus       KYCStatus
	KYCVerifiedAt   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (t SellerTier) Valid() bool {
	switch t {
	case TierBuyer, TierPrivateHolder, TierVerifiedDealer, TierCertifiedPartner, TierAdmin:
		return true
	}
	return false
}

// CanSell reports whether the tier may own listings at all.
func (t SellerTier) CanSell() bool {
	switch t {
	case TierPrivateHolder, TierVerifiedDealer, TierCertifiedPartner, TierAdmin:
		return true
	}
	return false
}

func (s KYCStatus) Valid() bool {
	switch s {
	case KYCNotStarted, KYCPending, KYCVerified, KYCRejected:
		return true
	}
	return false
}
