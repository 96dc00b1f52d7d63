package listingdto

import (
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type ListingOutput struct {
	ID              string     `json:"id"`
	ReferenceCode   string     `json:"reference_code"`
	SellerID        string     `json:"seller_id"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	ReferenceNumber string     `json:"reference_number"`
	Condition       string     `json:"condition"`
	AskingPrice     string     `json:"asking_price"`
	Currency        string     `json:"currency"`
	PhotoCount      int        `json:"photo_count"`
	Status          string     `json:"status"`
	RejectedReason  string     `json:"rejected_reason,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToListingOutput(listing *domain.Listing) *ListingOutput {
	return &ListingOutput{
		ID:              listing.ID,
		ReferenceCode:   listing.ReferenceCode,
		SellerID:        listing.SellerID,
		Brand:           listing.Brand,
		Model:           listing.Model,
		ReferenceNumber: listing.ReferenceNumber,
		Condition:       string(listing.Condition),
		AskingPrice:     listing.AskingPrice.StringFixed(2),
		Currency:        listing.Currency,
		PhotoCount:      listing.PhotoCount,
		Status:          string(listing.Status),
		RejectedReason:  listing.RejectedReason,
		ApprovedAt:      listing.ApprovedAt,
		SubmittedAt:     listing.SubmittedAt,
		CreatedAt:       listing.CreatedAt,
	}
}

type QuotaOutput struct {
	SellerID    string `json:"seller_id"`
	Tier        string `json:"tier"`
	Limit       int    `json:"limit"`
	ActiveCount int64  `json:"active_count"`
	// Remaining is -1 for unbounded tiers.
	Remaining int64 `json:"remaining"`
	Allowed   bool  `json:"allowed"`
}
