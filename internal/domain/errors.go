package domain

import "errors"

var (
	ErrQuotaExceeded              = errors.New("seller listing quota exceeded")
	ErrVerificationRequired       = errors.New("seller identity verification required")
	ErrInvalidTransition          = errors.New("status transition not permitted from current state")
	ErrSelfPurchaseForbidden      = errors.New("buyer may not purchase own listing")
	ErrConcurrentPurchaseConflict = errors.New("listing no longer available")
	ErrExternalProviderFailure    = errors.New("external provider failure")
	ErrTierCannotSell             = errors.New("tier may not own listings")
	ErrInvalidAskingPrice         = errors.New("asking price must be positive")
	ErrInvalidCondition           = errors.New("unknown watch condition")
	ErrPhotoSetIncomplete         = errors.New("required photo set not present")
	ErrNotListingOwner            = errors.New("actor does not own this listing")
	ErrAdminRoleRequired          = errors.New("admin role required")
	ErrListingNotFound            = errors.New("listing not found")
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrSellerNotFound             = errors.New("seller not found")
)
