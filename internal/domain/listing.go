package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatus string

const (
	ListingDraft         ListingStatus = "draft"
	ListingPendingReview ListingStatus = "pending_review"
	ListingApproved      ListingStatus = "approved"
	ListingRejected      ListingStatus = "rejected"
	ListingSold          ListingStatus = "sold"
	ListingArchived      ListingStatus = "archived"
)

type WatchCondition string

const (
	ConditionUnworn    WatchCondition = "unworn"
	ConditionExcellent WatchCondition = "excellent"
	ConditionVeryGood  WatchCondition = "very_good"
	ConditionGood      WatchCondition = "good"
	ConditionFair      WatchCondition = "fair"
)

// MinListingPhotos is the required photo set before a draft may be submitted.
const MinListingPhotos = 3

type Listing struct {
	ID              string
	ReferenceCode   string
	SellerID        string
	Brand           string
	Model           string
	ReferenceNumber string
	Condition       WatchCondition
	AskingPrice     decimal.Decimal
	Currency        string
	PhotoCount      int
	Status          ListingStatus
	RejectedReason  string
	ApprovedAt      *time.Time
	ApprovedBy      string
	SubmittedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var listingTransitions = map[ListingStatus]map[ListingStatus]bool{
	ListingDraft: {
		ListingPendingReview: true,
		ListingArchived:      true,
	},
	ListingPendingReview: {
		ListingApproved: true,
		ListingRejected: true,
		ListingArchived: true,
	},
	ListingApproved: {
		ListingSold:     true,
		ListingArchived: true,
	},
	ListingRejected: {
		ListingDraft: true,
	},
}

func (s ListingStatus) CanTransitionTo(to ListingStatus) bool {
	return listingTransitions[s][to]
}

func (s ListingStatus) Terminal() bool {
	return s == ListingSold || s == ListingArchived
}

// Active statuses count against the seller's listing quota.
func (s ListingStatus) Active() bool {
	switch s {
	case ListingDraft, ListingPendingReview, ListingApproved:
		return true
	}
	return false
}

func (c WatchCondition) Valid() bool {
	switch c {
	case ConditionUnworn, ConditionExcellent, ConditionVeryGood, ConditionGood, ConditionFair:
		return true
	}
	return false
}
