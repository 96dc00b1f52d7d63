package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/usecase"
	listingdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/listing"
	"github.com/shopspring/decimal"
)

type ListingHandler struct {
	listingUC usecase.ListingUsecase
}

func NewListingHandler(listingUC usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{listingUC: listingUC}
}

type createListingRequest struct {
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	ReferenceNumber string `json:"reference_number"`
	Condition       string `json:"condition"`
	AskingPrice     string `json:"asking_price"`
	Currency        string `json:"currency"`
	PhotoCount      int    `json:"photo_count"`
}

func (h *ListingHandler) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	price, err := decimal.NewFromString(req.AskingPrice)
	if err != nil {
		respondWithError(w, domain.ErrInvalidAskingPrice)
		return
	}

	output, err := h.listingUC.CreateListing(&listingdto.CreateListingInput{
		SellerID:        actorID(r),
		Brand:           req.Brand,
		Model:           req.Model,
		ReferenceNumber: req.ReferenceNumber,
		Condition:       domain.WatchCondition(req.Condition),
		AskingPrice:     price,
		Currency:        strings.ToUpper(req.Currency),
		PhotoCount:      req.PhotoCount,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

func (h *ListingHandler) handleGetListing(w http.ResponseWriter, r *http.Request) {
	output, err := h.listingUC.GetListingByID(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}

func (h *ListingHandler) handleSubmitListing(w http.ResponseWriter, r *http.Request) {
	if err := h.listingUC.SubmitListing(chi.URLParam(r, "id"), actorID(r)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(domain.ListingPendingReview)})
}

func (h *ListingHandler) handleResubmitListing(w http.ResponseWriter, r *http.Request) {
	if err := h.listingUC.ResubmitListing(chi.URLParam(r, "id"), actorID(r)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(domain.ListingDraft)})
}

func (h *ListingHandler) handleArchiveListing(w http.ResponseWriter, r *http.Request) {
	if err := h.listingUC.ArchiveListing(chi.URLParam(r, "id"), actorID(r)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(domain.ListingArchived)})
}

func (h *ListingHandler) handleGetSellerListings(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	var statuses []domain.ListingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, domain.ListingStatus(s))
		}
	}

	listings, total, err := h.listingUC.GetSellerListings(&listingdto.GetSellerListingsInput{
		SellerID: chi.URLParam(r, "id"),
		Page:     page,
		Limit:    limit,
		Statuses: statuses,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"total":    total,
	})
}

func (h *ListingHandler) handleGetSellerQuota(w http.ResponseWriter, r *http.Request) {
	output, err := h.listingUC.GetSellerQuota(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}
