package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/google/uuid"
)

type SellerUsecase interface {
	RegisterSeller(displayName string, tier domain.SellerTier) (*domain.SellerProfile, error)
	GetSellerByID(sellerID string) (*domain.SellerProfile, error)
	UpdateSellerTier(adminID, sellerID string, tier domain.SellerTier) error
	SetZeroFeeEligible(adminID, sellerID string, eligible bool) error
	RefreshKYCStatus(ctx context.Context, sellerID string) (domain.KYCStatus, error)
}

type DefaultSellerUsecase struct {
	SellerRepo domain.SellerRepository
	Identity   domain.IdentityProvider
}

func NewDefaultSellerUsecase(sellerRepo domain.SellerRepository, identity domain.IdentityProvider) *DefaultSellerUsecase {
	return &DefaultSellerUsecase{
		SellerRepo: sellerRepo,
		Identity:   identity,
	}
}

func (uc *DefaultSellerUsecase) RegisterSeller(displayName string, tier domain.SellerTier) (*domain.SellerProfile, error) {
	if !tier.Valid() {
		return nil, domain.ErrTierCannotSell
	}

	now := time.Now()
	seller := &domain.SellerProfile{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		Tier:        tier,
		KYCStatus:   domain.KYCNotStarted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.SellerRepo.CreateSeller(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (uc *DefaultSellerUsecase) GetSellerByID(sellerID string) (*domain.SellerProfile, error) {
	return uc.SellerRepo.GetSellerByID(sellerID)
}

func (uc *DefaultSellerUsecase) UpdateSellerTier(adminID, sellerID string, tier domain.SellerTier) error {
	if err := requireAdmin(uc.SellerRepo, adminID); err != nil {
		return err
	}
	if !tier.Valid() {
		return domain.ErrTierCannotSell
	}
	if err := uc.SellerRepo.UpdateSellerTier(sellerID, tier); err != nil {
		return err
	}
	slog.Info("seller tier updated", "seller_id", sellerID, "tier", tier, "admin_id", adminID)
	return nil
}

func (uc *DefaultSellerUsecase) SetZeroFeeEligible(adminID, sellerID string, eligible bool) error {
	if err := requireAdmin(uc.SellerRepo, adminID); err != nil {
		return err
	}
	if err := uc.SellerRepo.SetZeroFeeEligible(sellerID, eligible); err != nil {
		return err
	}
	slog.Info("seller zero-fee override updated", "seller_id", sellerID, "eligible", eligible, "admin_id", adminID)
	return nil
}

// RefreshKYCStatus pulls the verification status from the identity
// provider into the profile. The provider owns the status; we only
// mirror it.
func (uc *DefaultSellerUsecase) RefreshKYCStatus(ctx context.Context, sellerID string) (domain.KYCStatus, error) {
	status, err := uc.Identity.KYCStatusOf(ctx, sellerID)
	if err != nil {
		return "", err
	}

	var verifiedAt *time.Time
	if status == domain.KYCVerified {
		now := time.Now()
		verifiedAt = &now
	}
	if err := uc.SellerRepo.UpdateKYCStatus(sellerID, status, verifiedAt); err != nil {
		return "", err
	}

	slog.Info("kyc status refreshed", "seller_id", sellerID, "status", status)
	return status, nil
}
