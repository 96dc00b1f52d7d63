package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondWithError maps the domain error taxonomy onto HTTP statuses so
// the presentation layer can tell "logic rejected this" from
// "infrastructure failed".
func respondWithError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal"

	switch {
	case errors.Is(err, domain.ErrQuotaExceeded):
		status, kind = http.StatusConflict, "quota_exceeded"
	case errors.Is(err, domain.ErrVerificationRequired):
		status, kind = http.StatusForbidden, "verification_required"
	case errors.Is(err, domain.ErrInvalidTransition):
		status, kind = http.StatusConflict, "invalid_transition"
	case errors.Is(err, domain.ErrSelfPurchaseForbidden):
		status, kind = http.StatusForbidden, "self_purchase_forbidden"
	case errors.Is(err, domain.ErrConcurrentPurchaseConflict):
		status, kind = http.StatusConflict, "listing_unavailable"
	case errors.Is(err, domain.ErrExternalProviderFailure):
		status, kind = http.StatusBadGateway, "external_provider_failure"
	case errors.Is(err, domain.ErrNotListingOwner), errors.Is(err, domain.ErrAdminRoleRequired):
		status, kind = http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrListingNotFound), errors.Is(err, domain.ErrTransactionNotFound), errors.Is(err, domain.ErrSellerNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidAskingPrice), errors.Is(err, domain.ErrInvalidCondition),
		errors.Is(err, domain.ErrPhotoSetIncomplete), errors.Is(err, domain.ErrTierCannotSell):
		status, kind = http.StatusBadRequest, "validation_failed"
	}

	respondWithJSON(w, status, errorBody{Error: err.Error(), Kind: kind})
}
