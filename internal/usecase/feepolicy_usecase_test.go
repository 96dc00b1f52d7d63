package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

func TestUpdateFeePolicy_RequiresAdmin(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierVerifiedDealer)
	admin := verifiedSeller("admin-1", domain.TierAdmin)
	policyRepo := &stubFeePolicyRepo{}
	uc := NewDefaultFeePolicyUsecase(policyRepo, newStubSellerRepo(seller, admin))

	if err := uc.UpdateFeePolicy("seller-1", true, nil); !errors.Is(err, domain.ErrAdminRoleRequired) {
		t.Fatalf("err = %v, want ErrAdminRoleRequired", err)
	}
	if policyRepo.policy.ZeroFeeActive {
		t.Fatal("a denied update must not touch the stored policy")
	}

	end := time.Now().Add(72 * time.Hour)
	if err := uc.UpdateFeePolicy("admin-1", true, &end); err != nil {
		t.Fatal(err)
	}
	if !policyRepo.policy.ZeroFeeActive || policyRepo.policy.UpdatedBy != "admin-1" {
		t.Errorf("stored policy = %+v", policyRepo.policy)
	}
}

func TestEffectiveRateFor(t *testing.T) {
	dealer := verifiedSeller("dealer-1", domain.TierVerifiedDealer)
	buyer := verifiedSeller("buyer-1", domain.TierBuyer)
	uc := NewDefaultFeePolicyUsecase(&stubFeePolicyRepo{}, newStubSellerRepo(dealer, buyer))

	rate, err := uc.EffectiveRateFor("dealer-1", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(decimal.RequireFromString("0.025")) {
		t.Errorf("rate = %s, want 0.025", rate)
	}

	if _, err := uc.EffectiveRateFor("buyer-1", time.Now()); !errors.Is(err, domain.ErrTierCannotSell) {
		t.Errorf("buyer tier: err = %v, want ErrTierCannotSell", err)
	}
}

func TestEffectiveRateFor_SeesPolicyChanges(t *testing.T) {
	// Rates are previews against durable state, never a cached copy.
	dealer := verifiedSeller("dealer-1", domain.TierVerifiedDealer)
	policyRepo := &stubFeePolicyRepo{}
	uc := NewDefaultFeePolicyUsecase(policyRepo, newStubSellerRepo(dealer))

	policyRepo.policy = domain.PlatformFeePolicy{ZeroFeeActive: true}
	rate, err := uc.EffectiveRateFor("dealer-1", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !rate.IsZero() {
		t.Errorf("rate under open window = %s, want 0", rate)
	}

	policyRepo.policy = domain.PlatformFeePolicy{}
	rate, err = uc.EffectiveRateFor("dealer-1", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(decimal.RequireFromString("0.025")) {
		t.Errorf("rate after window close = %s, want 0.025", rate)
	}
}

type stubIdentityProvider struct {
	status domain.KYCStatus
	err    error
}

func (p *stubIdentityProvider) KYCStatusOf(ctx context.Context, sellerID string) (domain.KYCStatus, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.status, nil
}

func TestRefreshKYCStatus(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	seller.KYCStatus = domain.KYCPending
	seller.KYCVerifiedAt = nil
	sellerRepo := newStubSellerRepo(seller)
	identity := &stubIdentityProvider{status: domain.KYCVerified}
	uc := NewDefaultSellerUsecase(sellerRepo, identity)

	status, err := uc.RefreshKYCStatus(context.Background(), "seller-1")
	if err != nil {
		t.Fatal(err)
	}
	if status != domain.KYCVerified {
		t.Errorf("status = %s, want verified", status)
	}
	if seller.KYCStatus != domain.KYCVerified || seller.KYCVerifiedAt == nil {
		t.Errorf("profile not mirrored: status=%s verified_at=%v", seller.KYCStatus, seller.KYCVerifiedAt)
	}
}

func TestRefreshKYCStatus_ProviderFailure(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	seller.KYCStatus = domain.KYCPending
	identity := &stubIdentityProvider{err: domain.ErrExternalProviderFailure}
	uc := NewDefaultSellerUsecase(newStubSellerRepo(seller), identity)

	if _, err := uc.RefreshKYCStatus(context.Background(), "seller-1"); !errors.Is(err, domain.ErrExternalProviderFailure) {
		t.Fatalf("err = %v, want ErrExternalProviderFailure", err)
	}
	if seller.KYCStatus != domain.KYCPending {
		t.Error("a failed refresh must not change the stored status")
	}
}

func TestUpdateSellerTier_RequiresAdmin(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	admin := verifiedSeller("admin-1", domain.TierAdmin)
	uc := NewDefaultSellerUsecase(newStubSellerRepo(seller, admin), nil)

	if err := uc.UpdateSellerTier("seller-1", "seller-1", domain.TierVerifiedDealer); !errors.Is(err, domain.ErrAdminRoleRequired) {
		t.Fatalf("self promotion: err = %v, want ErrAdminRoleRequired", err)
	}
	if err := uc.UpdateSellerTier("admin-1", "seller-1", domain.TierVerifiedDealer); err != nil {
		t.Fatal(err)
	}
	if seller.Tier != domain.TierVerifiedDealer {
		t.Errorf("tier = %s, want verified_dealer", seller.Tier)
	}
}
