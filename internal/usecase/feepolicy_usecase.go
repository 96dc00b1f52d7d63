package usecase

import (
	"log/slog"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

type FeePolicyUsecase interface {
	GetFeePolicy() (*domain.PlatformFeePolicy, error)
	UpdateFeePolicy(adminID string, zeroFeeActive bool, zeroFeeEndDate *time.Time) error
	EffectiveRateFor(sellerID string, now time.Time) (decimal.Decimal, error)
}

// DefaultFeePolicyUsecase is the single place the precedence rules
// live. The presentation layer previews rates through it and never
// re-implements them.
type DefaultFeePolicyUsecase struct {
	FeePolicyRepo domain.FeePolicyRepository
	SellerRepo    domain.SellerRepository
}

func NewDefaultFeePolicyUsecase(feePolicyRepo domain.FeePolicyRepository, sellerRepo domain.SellerRepository) *DefaultFeePolicyUsecase {
	return &DefaultFeePolicyUsecase{
		FeePolicyRepo: feePolicyRepo,
		SellerRepo:    sellerRepo,
	}
}

func (uc *DefaultFeePolicyUsecase) GetFeePolicy() (*domain.PlatformFeePolicy, error) {
	return uc.FeePolicyRepo.LoadFeePolicy()
}

func (uc *DefaultFeePolicyUsecase) UpdateFeePolicy(adminID string, zeroFeeActive bool, zeroFeeEndDate *time.Time) error {
	if err := requireAdmin(uc.SellerRepo, adminID); err != nil {
		return err
	}

	policy := &domain.PlatformFeePolicy{
		ZeroFeeActive:  zeroFeeActive,
		ZeroFeeEndDate: zeroFeeEndDate,
		UpdatedBy:      adminID,
	}
	if err := uc.FeePolicyRepo.SaveFeePolicy(policy); err != nil {
		return err
	}

	slog.Info("platform fee policy updated", "admin_id", adminID, "zero_fee_active", zeroFeeActive, "zero_fee_end_date", zeroFeeEndDate)
	return nil
}

func (uc *DefaultFeePolicyUsecase) EffectiveRateFor(sellerID string, now time.Time) (decimal.Decimal, error) {
	seller, err := uc.SellerRepo.GetSellerByID(sellerID)
	if err != nil {
		return decimal.Zero, err
	}
	if !seller.Tier.CanSell() {
		return decimal.Zero, domain.ErrTierCannotSell
	}

	policy, err := uc.FeePolicyRepo.LoadFeePolicy()
	if err != nil {
		return decimal.Zero, err
	}

	return domain.EffectiveRate(seller, *policy, now), nil
}
