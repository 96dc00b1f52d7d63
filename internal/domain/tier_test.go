package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestListingLimitFor(t *testing.T) {
	tests := []struct {
		tier SellerTier
		want int
	}{
		{TierPrivateHolder, 3},
		{TierVerifiedDealer, 25},
		{TierCertifiedPartner, UnlimitedListings},
		{TierAdmin, UnlimitedListings},
	}

	for _, tt := range tests {
		if got := ListingLimitFor(tt.tier); got != tt.want {
			t.Errorf("ListingLimitFor(%s) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestBaseRateFor_ExactDecimals(t *testing.T) {
	// Rates are exact decimals, never binary floats.
	if got := BaseRateFor(TierPrivateHolder); got.String() != "0.035" {
		t.Errorf("private_holder rate = %s, want 0.035", got)
	}
	if got := BaseRateFor(TierVerifiedDealer); got.String() != "0.025" {
		t.Errorf("verified_dealer rate = %s, want 0.025", got)
	}
	if !BaseRateFor(TierCertifiedPartner).Equal(decimal.Zero) {
		t.Error("certified_partner rate should be zero")
	}
}

func TestBaseRateFor_PanicsOnNonSellingTier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for buyer tier")
		}
	}()
	BaseRateFor(TierBuyer)
}

func TestCanSell(t *testing.T) {
	if TierBuyer.CanSell() {
		t.Error("buyer must not own listings")
	}
	for _, tier := range []SellerTier{TierPrivateHolder, TierVerifiedDealer, TierCertifiedPartner, TierAdmin} {
		if !tier.CanSell() {
			t.Errorf("%s should be allowed to own listings", tier)
		}
	}
}
