package domain

import "time"

// ListingRepository persists listings. All transition methods are
// conditional updates guarded on the current status: the returned bool
// is false when the guard did not match, which callers surface as
// ErrInvalidTransition. This is what keeps double-approvals and stale
// clients out without a read-then-write race.
type ListingRepository interface {
	CreateListing(listing *Listing) error
	GetListingByID(listingID string) (*Listing, error)
	GetListingsBySellerID(sellerID string, page, limit int64, statuses []ListingStatus) ([]*Listing, int64, error)

	// CountActiveListings counts draft/pending_review/approved listings
	// owned by the seller.
	CountActiveListings(sellerID string) (int64, error)

	SubmitListing(listingID string, submittedAt time.Time) (bool, error)
	ApproveListing(listingID, adminID string, approvedAt time.Time) (bool, error)
	RejectListing(listingID, reason string) (bool, error)
	ResubmitListing(listingID string) (bool, error)
	ArchiveListing(listingID string) (bool, error)

	// ReleaseListing returns a sold listing to approved after a failed
	// or abandoned checkout.
	ReleaseListing(listingID string) (bool, error)
}
