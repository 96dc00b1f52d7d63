package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnlimitedListings marks tiers without a listing quota.
const UnlimitedListings = -1

var tierListingLimits = map[SellerTier]int{
	TierPrivateHolder:    3,
	TierVerifiedDealer:   25,
	TierCertifiedPartner: UnlimitedListings,
	TierAdmin:            UnlimitedListings,
}

var tierBaseRates = map[SellerTier]decimal.Decimal{
	TierPrivateHolder:    decimal.RequireFromString("0.035"),
	TierVerifiedDealer:   decimal.RequireFromString("0.025"),
	TierCertifiedPartner: decimal.Zero,
	TierAdmin:            decimal.Zero,
}

// ListingLimitFor returns the quota for a selling tier.
// An unknown or non-selling tier is a programmer error, not a runtime condition.
func ListingLimitFor(tier SellerTier) int {
	limit, ok := tierListingLimits[tier]
	if !ok {
		panic(fmt.Sprintf("listing limit requested for non-selling tier %q", tier))
	}
	return limit
}

// BaseRateFor returns the contractual commission rate for a selling tier.
func BaseRateFor(tier SellerTier) decimal.Decimal {
	rate, ok := tierBaseRates[tier]
	if !ok {
		panic(fmt.Sprintf("commission rate requested for non-selling tier %q", tier))
	}
	return rate
}
