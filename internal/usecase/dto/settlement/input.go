package settlementdto

type CheckoutInput struct {
	ListingID string
	BuyerID   string
}
