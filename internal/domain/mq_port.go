package domain

type ListingEvent struct {
	ListingID     string `json:"listing_id"`
	ReferenceCode string `json:"reference_code"`
	SellerID      string `json:"seller_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

type TransactionEvent struct {
	TransactionID string `json:"transaction_id"`
	ListingID     string `json:"listing_id"`
	BuyerID       string `json:"buyer_id"`
	SellerID      string `json:"seller_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Commission    string `json:"commission"`
	Currency      string `json:"currency"`
}

type EventPublisher interface {
	PublishListingEvent(event ListingEvent) error
	PublishTransactionEvent(event TransactionEvent) error
}
