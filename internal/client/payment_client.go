package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type checkoutRequest struct {
	TransactionID string `json:"transaction_id"`
	ListingID     string `json:"listing_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	BuyerID       string `json:"buyer_id"`
}

type checkoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPPaymentClient talks to the external checkout provider. Completion
// comes back later through the payment webhook, never synchronously.
type HTTPPaymentClient struct {
	Address string
}

func NewHTTPPaymentClient(address string) *HTTPPaymentClient {
	return &HTTPPaymentClient{Address: address}
}

func (c *HTTPPaymentClient) InitiateCheckout(ctx context.Context, txn *domain.Transaction, listing *domain.Listing) (*domain.CheckoutSession, error) {
	requestBodyBytes, err := json.Marshal(checkoutRequest{
		TransactionID: txn.ID,
		ListingID:     listing.ID,
		Description:   fmt.Sprintf("%s %s Ref. %s", listing.Brand, listing.Model, listing.ReferenceNumber),
		Amount:        txn.Amount.StringFixed(2),
		Currency:      txn.Currency,
		BuyerID:       txn.BuyerID,
	})
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/checkout/sessions", c.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalProviderFailure, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var session checkoutResponse
		if err := json.Unmarshal(responseBodyBytes, &session); err != nil {
			return nil, err
		}
		return &domain.CheckoutSession{
			SessionID:   session.SessionID,
			RedirectURL: session.RedirectURL,
		}, nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return nil, fmt.Errorf("%w: status %d", domain.ErrExternalProviderFailure, response.StatusCode)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrExternalProviderFailure, errResp.Error)
}
