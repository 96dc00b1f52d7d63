package usecase

import (
	"context"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

// In-memory repositories honoring the same conditional-update contracts
// as the postgres implementations.

type stubSellerRepo struct {
	sellers map[string]*domain.SellerProfile
	getErr  error
}

func newStubSellerRepo(sellers ...*domain.SellerProfile) *stubSellerRepo {
	repo := &stubSellerRepo{sellers: make(map[string]*domain.SellerProfile)}
	for _, s := range sellers {
		repo.sellers[s.ID] = s
	}
	return repo
}

func (r *stubSellerRepo) CreateSeller(seller *domain.SellerProfile) error {
	r.sellers[seller.ID] = seller
	return nil
}

func (r *stubSellerRepo) GetSellerByID(sellerID string) (*domain.SellerProfile, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	seller, ok := r.sellers[sellerID]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	return seller, nil
}

func (r *stubSellerRepo) UpdateSellerTier(sellerID string, tier domain.SellerTier) error {
	seller, err := r.GetSellerByID(sellerID)
	if err != nil {
		return err
	}
	seller.Tier = tier
	return nil
}

func (r *stubSellerRepo) SetZeroFeeEligible(sellerID string, eligible bool) error {
	seller, err := r.GetSellerByID(sellerID)
	if err != nil {
		return err
	}
	seller.ZeroFeeEligible = eligible
	return nil
}

func (r *stubSellerRepo) UpdateKYCStatus(sellerID string, status domain.KYCStatus, verifiedAt *time.Time) error {
	seller, err := r.GetSellerByID(sellerID)
	if err != nil {
		return err
	}
	seller.KYCStatus = status
	seller.KYCVerifiedAt = verifiedAt
	return nil
}

type stubListingRepo struct {
	listings map[string]*domain.Listing
	countErr error
}

func newStubListingRepo(listings ...*domain.Listing) *stubListingRepo {
	repo := &stubListingRepo{listings: make(map[string]*domain.Listing)}
	for _, l := range listings {
		repo.listings[l.ID] = l
	}
	return repo
}

func (r *stubListingRepo) CreateListing(listing *domain.Listing) error {
	r.listings[listing.ID] = listing
	return nil
}

func (r *stubListingRepo) GetListingByID(listingID string) (*domain.Listing, error) {
	listing, ok := r.listings[listingID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

func (r *stubListingRepo) GetListingsBySellerID(sellerID string, page, limit int64, statuses []domain.ListingStatus) ([]*domain.Listing, int64, error) {
	var matched []*domain.Listing
	for _, listing := range r.listings {
		if listing.SellerID != sellerID {
			continue
		}
		if len(statuses) > 0 {
			keep := false
			for _, s := range statuses {
				if listing.Status == s {
					keep = true
					break
				}
			}
			if !keep {
				continue
			}
		}
		matched = append(matched, listing)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubListingRepo) CountActiveListings(sellerID string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, listing := range r.listings {
		if listing.SellerID == sellerID && listing.Status.Active() {
			count++
		}
	}
	return count, nil
}

func (r *stubListingRepo) transitionIf(listingID string, from, to domain.ListingStatus) bool {
	listing, ok := r.listings[listingID]
	if !ok || listing.Status != from {
		return false
	}
	listing.Status = to
	listing.UpdatedAt = time.Now()
	return true
}

func (r *stubListingRepo) SubmitListing(listingID string, submittedAt time.Time) (bool, error) {
	if !r.transitionIf(listingID, domain.ListingDraft, domain.ListingPendingReview) {
		return false, nil
	}
	r.listings[listingID].SubmittedAt = &submittedAt
	return true, nil
}

func (r *stubListingRepo) ApproveListing(listingID, adminID string, approvedAt time.Time) (bool, error) {
	if !r.transitionIf(listingID, domain.ListingPendingReview, domain.ListingApproved) {
		return false, nil
	}
	listing := r.listings[listingID]
	listing.ApprovedAt = &approvedAt
	listing.ApprovedBy = adminID
	return true, nil
}

func (r *stubListingRepo) RejectListing(listingID, reason string) (bool, error) {
	if !r.transitionIf(listingID, domain.ListingPendingReview, domain.ListingRejected) {
		return false, nil
	}
	r.listings[listingID].RejectedReason = reason
	return true, nil
}

func (r *stubListingRepo) ResubmitListing(listingID string) (bool, error) {
	if !r.transitionIf(listingID, domain.ListingRejected, domain.ListingDraft) {
		return false, nil
	}
	listing := r.listings[listingID]
	listing.RejectedReason = ""
	listing.ApprovedAt = nil
	listing.ApprovedBy = ""
	listing.SubmittedAt = nil
	return true, nil
}

func (r *stubListingRepo) ArchiveListing(listingID string) (bool, error) {
	listing, ok := r.listings[listingID]
	if !ok || !listing.Status.Active() {
		return false, nil
	}
	listing.Status = domain.ListingArchived
	return true, nil
}

func (r *stubListingRepo) ReleaseListing(listingID string) (bool, error) {
	return r.transitionIf(listingID, domain.ListingSold, domain.ListingApproved), nil
}

type stubTransactionRepo struct {
	listings  *stubListingRepo
	txns      map[string]*domain.Transaction
	settleErr error
}

func newStubTransactionRepo(listings *stubListingRepo) *stubTransactionRepo {
	return &stubTransactionRepo{
		listings: listings,
		txns:     make(map[string]*domain.Transaction),
	}
}

func (r *stubTransactionRepo) SettleListing(txn *domain.Transaction) error {
	if r.settleErr != nil {
		return r.settleErr
	}
	listing, ok := r.listings.listings[txn.ListingID]
	if !ok || listing.Status != domain.ListingApproved {
		return domain.ErrConcurrentPurchaseConflict
	}
	listing.Status = domain.ListingSold
	r.txns[txn.ID] = txn
	return nil
}

func (r *stubTransactionRepo) GetTransactionByID(txnID string) (*domain.Transaction, error) {
	txn, ok := r.txns[txnID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *stubTransactionRepo) GetTransactionsBySellerID(sellerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	var matched []*domain.Transaction
	for _, txn := range r.txns {
		if txn.SellerID == sellerID {
			matched = append(matched, txn)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *stubTransactionRepo) GetTransactionsByBuyerID(buyerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	var matched []*domain.Transaction
	for _, txn := range r.txns {
		if txn.BuyerID == buyerID {
			matched = append(matched, txn)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *stubTransactionRepo) UpdateTransactionStatusIf(txnID string, from, to domain.TransactionStatus, failureReason string) (bool, error) {
	txn, ok := r.txns[txnID]
	if !ok || txn.Status != from {
		return false, nil
	}
	txn.Status = to
	if failureReason != "" {
		txn.FailureReason = failureReason
	}
	txn.UpdatedAt = time.Now()
	return true, nil
}

func (r *stubTransactionRepo) CancelPendingTransaction(txnID, reason string) (bool, error) {
	cancelled, err := r.UpdateTransactionStatusIf(txnID, domain.TxPendingPayment, domain.TxCancelled, reason)
	if err != nil || !cancelled {
		return cancelled, err
	}
	if _, err := r.listings.ReleaseListing(r.txns[txnID].ListingID); err != nil {
		return true, err
	}
	return true, nil
}

func (r *stubTransactionRepo) FindExpiredPendingTransactions(olderThan time.Time) ([]*domain.Transaction, error) {
	var expired []*domain.Transaction
	for _, txn := range r.txns {
		if txn.Status == domain.TxPendingPayment && txn.CreatedAt.Before(olderThan) {
			expired = append(expired, txn)
		}
	}
	return expired, nil
}

type stubFeePolicyRepo struct {
	policy domain.PlatformFeePolicy
}

func (r *stubFeePolicyRepo) LoadFeePolicy() (*domain.PlatformFeePolicy, error) {
	policy := r.policy
	return &policy, nil
}

func (r *stubFeePolicyRepo) SaveFeePolicy(policy *domain.PlatformFeePolicy) error {
	r.policy = *policy
	return nil
}

type stubPaymentProvider struct {
	session *domain.CheckoutSession
	err     error
	calls   int
}

func (p *stubPaymentProvider) InitiateCheckout(ctx context.Context, txn *domain.Transaction, listing *domain.Listing) (*domain.CheckoutSession, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.session != nil {
		return p.session, nil
	}
	return &domain.CheckoutSession{SessionID: "sess-1", RedirectURL: "https://pay.example/sess-1"}, nil
}

// Fixture helpers.

func verifiedSeller(id string, tier domain.SellerTier) *domain.SellerProfile {
	now := time.Now()
	return &domain.SellerProfile{
		ID:            id,
		DisplayName:   "Seller " + id,
		Tier:          tier,
		KYCStatus:     domain.KYCVerified,
		KYCVerifiedAt: &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func listingFixture(id, sellerID string, status domain.ListingStatus) *domain.Listing {
	return &domain.Listing{
		ID:            id,
		ReferenceCode: "ref-" + id,
		SellerID:      sellerID,
		Brand:         "Rolex",
		Model:         "Submariner",
		Condition:     domain.ConditionVeryGood,
		AskingPrice:   decimal.RequireFromString("10000.00"),
		Currency:      "USD",
		PhotoCount:    5,
		Status:        status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
