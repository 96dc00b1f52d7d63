package usecase

import (
	"errors"
	"testing"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	listingdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/listing"
	"github.com/shopspring/decimal"
)

func createInput(sellerID string) *listingdto.CreateListingInput {
	return &listingdto.CreateListingInput{
		SellerID:    sellerID,
		Brand:       "Omega",
		Model:       "Seamaster",
		Condition:   domain.ConditionExcellent,
		AskingPrice: decimal.RequireFromString("4200.00"),
		Currency:    "EUR",
		PhotoCount:  4,
	}
}

func TestCreateListing_PrivateHolderQuota(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	listingRepo := newStubListingRepo(
		listingFixture("l1", "seller-1", domain.ListingDraft),
		listingFixture("l2", "seller-1", domain.ListingPendingReview),
		listingFixture("l3", "seller-1", domain.ListingApproved),
	)
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(seller), nil, nil)

	if _, err := uc.CreateListing(createInput("seller-1")); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("err = %v, want ErrQuotaExceeded", err)
	}

	// Sold and archived listings free their slots.
	listingRepo.listings["l3"].Status = domain.ListingArchived
	if _, err := uc.CreateListing(createInput("seller-1")); err != nil {
		t.Fatalf("create after archive: %v", err)
	}
}

func TestCreateListing_FailsClosedOnCountError(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	listingRepo := newStubListingRepo()
	listingRepo.countErr = errors.New("connection reset")
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(seller), nil, nil)

	if _, err := uc.CreateListing(createInput("seller-1")); err == nil {
		t.Fatal("expected error when the active count is unavailable")
	}
	if len(listingRepo.listings) != 0 {
		t.Fatal("no listing may be admitted without a quota check")
	}
}

func TestCreateListing_BuyerTierDenied(t *testing.T) {
	seller := verifiedSeller("buyer-1", domain.TierBuyer)
	uc := NewDefaultListingUsecase(newStubListingRepo(), newStubSellerRepo(seller), nil, nil)

	if _, err := uc.CreateListing(createInput("buyer-1")); !errors.Is(err, domain.ErrTierCannotSell) {
		t.Fatalf("err = %v, want ErrTierCannotSell", err)
	}
}

func TestCreateListing_Validation(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierVerifiedDealer)
	uc := NewDefaultListingUsecase(newStubListingRepo(), newStubSellerRepo(seller), nil, nil)

	badPrice := createInput("seller-1")
	badPrice.AskingPrice = decimal.Zero
	if _, err := uc.CreateListing(badPrice); !errors.Is(err, domain.ErrInvalidAskingPrice) {
		t.Errorf("zero price: err = %v, want ErrInvalidAskingPrice", err)
	}

	badCondition := createInput("seller-1")
	badCondition.Condition = "mint"
	if _, err := uc.CreateListing(badCondition); !errors.Is(err, domain.ErrInvalidCondition) {
		t.Errorf("unknown condition: err = %v, want ErrInvalidCondition", err)
	}
}

func TestCreateListing_StartsAsDraft(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierVerifiedDealer)
	listingRepo := newStubListingRepo()
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(seller), nil, nil)

	out, err := uc.CreateListing(createInput("seller-1"))
	if err != nil {
		t.Fatal(err)
	}
	if out.Status != string(domain.ListingDraft) {
		t.Errorf("status = %s, want draft", out.Status)
	}
	if out.ReferenceCode == "" {
		t.Error("expected a generated reference code")
	}
}

func TestSubmitListing_Gates(t *testing.T) {
	listing := listingFixture("l1", "seller-1", domain.ListingDraft)
	listingRepo := newStubListingRepo(listing)

	unverified := verifiedSeller("seller-1", domain.TierPrivateHolder)
	unverified.KYCStatus = domain.KYCPending
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(unverified), nil, nil)

	if err := uc.SubmitListing("l1", "someone-else"); !errors.Is(err, domain.ErrNotListingOwner) {
		t.Errorf("foreign actor: err = %v, want ErrNotListingOwner", err)
	}
	if err := uc.SubmitListing("l1", "seller-1"); !errors.Is(err, domain.ErrVerificationRequired) {
		t.Errorf("pending KYC: err = %v, want ErrVerificationRequired", err)
	}

	unverified.KYCStatus = domain.KYCVerified
	listing.PhotoCount = domain.MinListingPhotos - 1
	if err := uc.SubmitListing("l1", "seller-1"); !errors.Is(err, domain.ErrPhotoSetIncomplete) {
		t.Errorf("thin photo set: err = %v, want ErrPhotoSetIncomplete", err)
	}

	listing.PhotoCount = domain.MinListingPhotos
	if err := uc.SubmitListing("l1", "seller-1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if listing.Status != domain.ListingPendingReview {
		t.Errorf("status = %s, want pending_review", listing.Status)
	}

	// A second submit finds no draft to move.
	if err := uc.SubmitListing("l1", "seller-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("double submit: err = %v, want ErrInvalidTransition", err)
	}
}

func TestApproveListing_RequiresAdmin(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierVerifiedDealer)
	listingRepo := newStubListingRepo(listingFixture("l1", "seller-1", domain.ListingPendingReview))
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(seller), nil, nil)

	if err := uc.ApproveListing("l1", "seller-1"); !errors.Is(err, domain.ErrAdminRoleRequired) {
		t.Fatalf("err = %v, want ErrAdminRoleRequired", err)
	}
}

func TestApproveListing_SecondReviewConflicts(t *testing.T) {
	admin := verifiedSeller("admin-1", domain.TierAdmin)
	seller := verifiedSeller("seller-1", domain.TierVerifiedDealer)
	listing := listingFixture("l1", "seller-1", domain.ListingPendingReview)
	uc := NewDefaultListingUsecase(newStubListingRepo(listing), newStubSellerRepo(admin, seller), nil, nil)

	if err := uc.ApproveListing("l1", "admin-1"); err != nil {
		t.Fatal(err)
	}
	if listing.Status != domain.ListingApproved || listing.ApprovedBy != "admin-1" {
		t.Fatalf("listing after approve: status=%s approved_by=%s", listing.Status, listing.ApprovedBy)
	}

	// The review already concluded: a late second decision loses.
	if err := uc.ApproveListing("l1", "admin-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("double approve: err = %v, want ErrInvalidTransition", err)
	}
	if err := uc.RejectListing("l1", "admin-1", "late reject"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("reject after approve: err = %v, want ErrInvalidTransition", err)
	}
}

func TestRejectThenResubmit(t *testing.T) {
	admin := verifiedSeller("admin-1", domain.TierAdmin)
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	listing := listingFixture("l1", "seller-1", domain.ListingPendingReview)
	uc := NewDefaultListingUsecase(newStubListingRepo(listing), newStubSellerRepo(admin, seller), nil, nil)

	if err := uc.RejectListing("l1", "admin-1", "blurry photos"); err != nil {
		t.Fatal(err)
	}
	if listing.Status != domain.ListingRejected || listing.RejectedReason != "blurry photos" {
		t.Fatalf("listing after reject: status=%s reason=%q", listing.Status, listing.RejectedReason)
	}

	if err := uc.ResubmitListing("l1", "other-seller"); !errors.Is(err, domain.ErrNotListingOwner) {
		t.Errorf("foreign resubmit: err = %v, want ErrNotListingOwner", err)
	}
	if err := uc.ResubmitListing("l1", "seller-1"); err != nil {
		t.Fatal(err)
	}
	if listing.Status != domain.ListingDraft {
		t.Errorf("status = %s, want draft", listing.Status)
	}
	if listing.RejectedReason != "" || listing.SubmittedAt != nil {
		t.Error("resubmission should clear the previous review's traces")
	}
}

func TestArchiveListing_OwnerOrAdmin(t *testing.T) {
	admin := verifiedSeller("admin-1", domain.TierAdmin)
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	stranger := verifiedSeller("seller-2", domain.TierPrivateHolder)
	first := listingFixture("l1", "seller-1", domain.ListingApproved)
	second := listingFixture("l2", "seller-1", domain.ListingDraft)
	uc := NewDefaultListingUsecase(newStubListingRepo(first, second), newStubSellerRepo(admin, seller, stranger), nil, nil)

	if err := uc.ArchiveListing("l1", "seller-2"); !errors.Is(err, domain.ErrNotListingOwner) {
		t.Errorf("stranger archive: err = %v, want ErrNotListingOwner", err)
	}
	if err := uc.ArchiveListing("l1", "seller-1"); err != nil {
		t.Fatalf("owner archive: %v", err)
	}
	if err := uc.ArchiveListing("l2", "admin-1"); err != nil {
		t.Fatalf("admin archive: %v", err)
	}
	if first.Status != domain.ListingArchived || second.Status != domain.ListingArchived {
		t.Error("both listings should be archived")
	}
	if err := uc.ArchiveListing("l1", "seller-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("double archive: err = %v, want ErrInvalidTransition", err)
	}
}

func TestGetSellerQuota(t *testing.T) {
	seller := verifiedSeller("seller-1", domain.TierPrivateHolder)
	partner := verifiedSeller("partner-1", domain.TierCertifiedPartner)
	listingRepo := newStubListingRepo(
		listingFixture("l1", "seller-1", domain.ListingApproved),
		listingFixture("l2", "seller-1", domain.ListingSold),
	)
	uc := NewDefaultListingUsecase(listingRepo, newStubSellerRepo(seller, partner), nil, nil)

	quota, err := uc.GetSellerQuota("seller-1")
	if err != nil {
		t.Fatal(err)
	}
	if quota.Limit != 3 || quota.ActiveCount != 1 || quota.Remaining != 2 || !quota.Allowed {
		t.Errorf("quota = %+v, want limit 3, active 1, remaining 2, allowed", quota)
	}

	unlimited, err := uc.GetSellerQuota("partner-1")
	if err != nil {
		t.Fatal(err)
	}
	if unlimited.Limit != domain.UnlimitedListings || unlimited.Remaining != -1 || !unlimited.Allowed {
		t.Errorf("partner quota = %+v, want unlimited", unlimited)
	}
}
