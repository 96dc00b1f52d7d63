package settlementdto

import (
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type TransactionOutput struct {
	ID               string    `json:"id"`
	ReferenceCode    string    `json:"reference_code"`
	ListingID        string    `json:"listing_id"`
	BuyerID          string    `json:"buyer_id"`
	SellerID         string    `json:"seller_id"`
	Amount           string    `json:"amount"`
	Currency         string    `json:"currency"`
	CommissionRate   string    `json:"commission_rate"`
	CommissionAmount string    `json:"commission_amount"`
	NetAmount        string    `json:"net_amount"`
	Status           string    `json:"status"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToTransactionOutput(txn *domain.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:               txn.ID,
		ReferenceCode:    txn.ReferenceCode,
		ListingID:        txn.ListingID,
		BuyerID:          txn.BuyerID,
		SellerID:         txn.SellerID,
		Amount:           txn.Amount.StringFixed(2),
		Currency:         txn.Currency,
		CommissionRate:   txn.CommissionRate.String(),
		CommissionAmount: txn.CommissionAmount.StringFixed(2),
		NetAmount:        txn.NetAmount.StringFixed(2),
		Status:           string(txn.Status),
		FailureReason:    txn.FailureReason,
		CreatedAt:        txn.CreatedAt,
	}
}

type CheckoutOutput struct {
	Transaction *TransactionOutput `json:"transaction"`
	RedirectURL string             `json:"redirect_url"`
}
