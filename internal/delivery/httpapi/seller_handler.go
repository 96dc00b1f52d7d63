package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/usecase"
)

type SellerHandler struct {
	sellerUC usecase.SellerUsecase
}

func NewSellerHandler(sellerUC usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{sellerUC: sellerUC}
}

type sellerResponse struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	Tier            string `json:"tier"`
	ZeroFeeEligible bool   `json:"zero_fee_eligible"`
	KYCStatus       string `json:"kyc_status"`
}

func toSellerResponse(seller *domain.SellerProfile) sellerResponse {
	return sellerResponse{
		ID:              seller.ID,
		DisplayName:     seller.DisplayName,
		Tier:            string(seller.Tier),
		ZeroFeeEligible: seller.ZeroFeeEligible,
		KYCStatus:       string(seller.KYCStatus),
	}
}

type registerSellerRequest struct {
	DisplayName string `json:"display_name"`
	Tier        string `json:"tier"`
}

func (h *SellerHandler) handleRegisterSeller(w http.ResponseWriter, r *http.Request) {
	var req registerSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	seller, err := h.sellerUC.RegisterSeller(req.DisplayName, domain.SellerTier(req.Tier))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, toSellerResponse(seller))
}

func (h *SellerHandler) handleGetSeller(w http.ResponseWriter, r *http.Request) {
	seller, err := h.sellerUC.GetSellerByID(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toSellerResponse(seller))
}

func (h *SellerHandler) handleRefreshKYC(w http.ResponseWriter, r *http.Request) {
	status, err := h.sellerUC.RefreshKYCStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"kyc_status": string(status)})
}
