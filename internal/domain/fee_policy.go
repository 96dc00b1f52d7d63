package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformFeePolicy is the platform-wide commission waiver window.
// It is loaded fresh from storage on every read; stale copies must not
// be reused across requests.
type PlatformFeePolicy struct {
	ZeroFeeActive  bool
	ZeroFeeEndDate *time.Time
	UpdatedBy      string
	UpdatedAt      time.Time
}

// WindowOpen reports whether the zero-fee window covers the given instant.
func (p PlatformFeePolicy) WindowOpen(now time.Time) bool {
	if !p.ZeroFeeActive {
		return false
	}
	return p.ZeroFeeEndDate == nil || now.Before(*p.ZeroFeeEndDate)
}

// EffectiveRate resolves the commission rate for a seller at a given instant.
// Precedence, strictly in order:
//  1. certified partners and admins sell at a contractual 0%
//  2. an open platform-wide zero-fee window floors the rate to 0
//  3. a per-seller zero-fee grant floors the rate to 0
//  4. otherwise the tier's base rate applies
//
// Waivers only ever push the rate down; nothing raises it above the
// tier's base rate.
func EffectiveRate(seller *SellerProfile, policy PlatformFeePolicy, now time.Time) decimal.Decimal {
	if seller.Tier == TierCertifiedPartner || seller.Tier == TierAdmin {
		return decimal.Zero
	}
	if policy.WindowOpen(now) {
		return decimal.Zero
	}
	if seller.ZeroFeeEligible {
		return decimal.Zero
	}
	return BaseRateFor(seller.Tier)
}
