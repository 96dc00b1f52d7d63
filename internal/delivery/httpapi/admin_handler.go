package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/usecase"
)

type AdminHandler struct {
	listingUC   usecase.ListingUsecase
	sellerUC    usecase.SellerUsecase
	feePolicyUC usecase.FeePolicyUsecase
}

func NewAdminHandler(listingUC usecase.ListingUsecase, sellerUC usecase.SellerUsecase, feePolicyUC usecase.FeePolicyUsecase) *AdminHandler {
	return &AdminHandler{
		listingUC:   listingUC,
		sellerUC:    sellerUC,
		feePolicyUC: feePolicyUC,
	}
}

func (h *AdminHandler) handleApproveListing(w http.ResponseWriter, r *http.Request) {
	if err := h.listingUC.ApproveListing(chi.URLParam(r, "id"), actorID(r)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(domain.ListingApproved)})
}

type rejectListingRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) handleRejectListing(w http.ResponseWriter, r *http.Request) {
	var req rejectListingRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	if err := h.listingUC.RejectListing(chi.URLParam(r, "id"), actorID(r), req.Reason); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(domain.ListingRejected)})
}

type feePolicyResponse struct {
	ZeroFeeActive  bool       `json:"zero_fee_active"`
	ZeroFeeEndDate *time.Time `json:"zero_fee_end_date,omitempty"`
	UpdatedBy      string     `json:"updated_by,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (h *AdminHandler) handleGetFeePolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.feePolicyUC.GetFeePolicy()
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feePolicyResponse{
		ZeroFeeActive:  policy.ZeroFeeActive,
		ZeroFeeEndDate: policy.ZeroFeeEndDate,
		UpdatedBy:      policy.UpdatedBy,
		UpdatedAt:      policy.UpdatedAt,
	})
}

type updateFeePolicyRequest struct {
	ZeroFeeActive  bool       `json:"zero_fee_active"`
	ZeroFeeEndDate *time.Time `json:"zero_fee_end_date"`
}

func (h *AdminHandler) handleUpdateFeePolicy(w http.ResponseWriter, r *http.Request) {
	var req updateFeePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.feePolicyUC.UpdateFeePolicy(actorID(r), req.ZeroFeeActive, req.ZeroFeeEndDate); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) handleEffectiveRate(w http.ResponseWriter, r *http.Request) {
	sellerID := r.URL.Query().Get("seller_id")
	if sellerID == "" {
		http.Error(w, "seller_id is required", http.StatusBadRequest)
		return
	}

	rate, err := h.feePolicyUC.EffectiveRateFor(sellerID, time.Now())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{
		"seller_id":      sellerID,
		"effective_rate": rate.String(),
	})
}

type updateTierRequest struct {
	Tier string `json:"tier"`
}

func (h *AdminHandler) handleUpdateSellerTier(w http.ResponseWriter, r *http.Request) {
	var req updateTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.sellerUC.UpdateSellerTier(actorID(r), chi.URLParam(r, "id"), domain.SellerTier(req.Tier)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type zeroFeeRequest struct {
	Eligible bool `json:"eligible"`
}

func (h *AdminHandler) handleSetZeroFee(w http.ResponseWriter, r *http.Request) {
	var req zeroFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.sellerUC.SetZeroFeeEligible(actorID(r), chi.URLParam(r, "id"), req.Eligible); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
