package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type kycStatusResponse struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// HTTPIdentityClient reads KYC verification status from the identity
// provider. This service never mutates it.
type HTTPIdentityClient struct {
	Address string
}

func NewHTTPIdentityClient(address string) *HTTPIdentityClient {
	return &HTTPIdentityClient{Address: address}
}

func (c *HTTPIdentityClient) KYCStatusOf(ctx context.Context, userID string) (domain.KYCStatus, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/verifications/%s/status", c.Address, userID), nil)
	if err != nil {
		return "", err
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExternalProviderFailure, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
			return "", fmt.Errorf("%w: status %d", domain.ErrExternalProviderFailure, response.StatusCode)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrExternalProviderFailure, errResp.Error)
	}

	var statusResp kycStatusResponse
	if err := json.Unmarshal(responseBodyBytes, &statusResp); err != nil {
		return "", err
	}

	status := domain.KYCStatus(statusResp.Status)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown kyc status %q", domain.ErrExternalProviderFailure, statusResp.Status)
	}
	return status, nil
}
