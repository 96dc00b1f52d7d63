package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/horotrade/horotrade-listing-service/internal/usecase"
	settlementdto "github.com/horotrade/horotrade-listing-service/internal/usecase/dto/settlement"
)

type SettlementHandler struct {
	settlementUC usecase.SettlementUsecase
}

func NewSettlementHandler(settlementUC usecase.SettlementUsecase) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

type checkoutRequest struct {
	ListingID string `json:"listing_id"`
}

func (h *SettlementHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.settlementUC.Settle(r.Context(), &settlementdto.CheckoutInput{
		ListingID: req.ListingID,
		BuyerID:   actorID(r),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

type paymentWebhookRequest struct {
	TransactionID string `json:"transaction_id"`
	Event         string `json:"event"`
	Reason        string `json:"reason"`
}

// handlePaymentWebhook is the payment collaborator's completion
// notification. Completed captures the hold; failed releases the
// listing back to the market.
func (h *SettlementHandler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req paymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch req.Event {
	case "payment_completed":
		err = h.settlementUC.OnPaymentCompleted(req.TransactionID)
	case "payment_failed":
		err = h.settlementUC.OnPaymentFailed(req.TransactionID, req.Reason)
	default:
		http.Error(w, "unknown event", http.StatusBadRequest)
		return
	}
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}

func (h *SettlementHandler) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	output, err := h.settlementUC.GetTransactionByID(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}

func (h *SettlementHandler) handleGetSellerTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	txns, total, err := h.settlementUC.GetSellerTransactions(chi.URLParam(r, "id"), page, limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"total":        total,
	})
}

func (h *SettlementHandler) handleGetBuyerTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	txns, total, err := h.settlementUC.GetBuyerTransactions(chi.URLParam(r, "id"), page, limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"total":        total,
	})
}

func (h *SettlementHandler) handleMarkShipped(w http.ResponseWriter, r *http.Request) {
	h.advance(w, chi.URLParam(r, "id"), h.settlementUC.MarkShipped)
}

func (h *SettlementHandler) handleMarkDelivered(w http.ResponseWriter, r *http.Request) {
	h.advance(w, chi.URLParam(r, "id"), h.settlementUC.MarkDelivered)
}

func (h *SettlementHandler) handleComplete(w http.ResponseWriter, r *http.Request) {
	h.advance(w, chi.URLParam(r, "id"), h.settlementUC.CompleteTransaction)
}

func (h *SettlementHandler) handleRefund(w http.ResponseWriter, r *http.Request) {
	h.advance(w, chi.URLParam(r, "id"), h.settlementUC.RefundTransaction)
}

type disputeRequest struct {
	Reason string `json:"reason"`
}

func (h *SettlementHandler) handleOpenDispute(w http.ResponseWriter, r *http.Request) {
	var req disputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.settlementUC.OpenDispute(chi.URLParam(r, "id"), req.Reason); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "disputed"})
}

func (h *SettlementHandler) advance(w http.ResponseWriter, txnID string, op func(string) error) {
	if err := op(txnID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "advanced"})
}
