package listingdto

import (
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateListingInput struct {
	SellerID        string
	Brand           string
	Model           string
	ReferenceNumber string
	Condition       domain.WatchCondition
	AskingPrice     decimal.Decimal
	Currency        string
	PhotoCount      int
}

type GetSellerListingsInput struct {
	SellerID string
	Page     int64
	Limit    int64
	Statuses []domain.ListingStatus
}
