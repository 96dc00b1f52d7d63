package domain

import "time"

// NewSettlement builds the transaction record for a purchase. Pure with
// respect to its inputs: the commission is resolved here, once, and the
// result never changes if the listing or policy changes afterwards.
// The caller persists the returned transaction atomically with the
// listing's approved -> sold flip.
func NewSettlement(listing *Listing, seller *SellerProfile, buyerID string, policy PlatformFeePolicy, now time.Time) (*Transaction, error) {
	if buyerID == listing.SellerID {
		return nil, ErrSelfPurchaseForbidden
	}
	if listing.Status != ListingApproved {
		return nil, ErrInvalidTransition
	}
	if !listing.AskingPrice.IsPositive() {
		return nil, ErrInvalidAskingPrice
	}

	rate := EffectiveRate(seller, policy, now)
	// Half-up in the currency's minor unit.
	commission := listing.AskingPrice.Mul(rate).Round(2)

	return &Transaction{
		ListingID:        listing.ID,
		BuyerID:          buyerID,
		SellerID:         listing.SellerID,
		Amount:           listing.AskingPrice,
		Currency:         listing.Currency,
		CommissionRate:   rate,
		CommissionAmount: commission,
		NetAmount:        listing.AskingPrice.Sub(commission),
		Status:           TxPendingPayment,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
