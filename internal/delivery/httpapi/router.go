package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers the marketplace routes. Authentication lives at
// the gateway; the acting user arrives in the X-Actor-ID header.
func NewRouter(
	listingHandler *ListingHandler,
	settlementHandler *SettlementHandler,
	sellerHandler *SellerHandler,
	adminHandler *AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Actor-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/listings", func(r chi.Router) {
		r.Post("/", listingHandler.handleCreateListing)
		r.Get("/{id}", listingHandler.handleGetListing)
		r.Post("/{id}/submit", listingHandler.handleSubmitListing)
		r.Post("/{id}/resubmit", listingHandler.handleResubmitListing)
		r.Post("/{id}/archive", listingHandler.handleArchiveListing)
		r.Post("/{id}/approve", adminHandler.handleApproveListing)
		r.Post("/{id}/reject", adminHandler.handleRejectListing)
	})

	r.Route("/sellers/{id}", func(r chi.Router) {
		r.Get("/", sellerHandler.handleGetSeller)
		r.Get("/listings", listingHandler.handleGetSellerListings)
		r.Get("/quota", listingHandler.handleGetSellerQuota)
		r.Get("/transactions", settlementHandler.handleGetSellerTransactions)
		r.Post("/kyc/refresh", sellerHandler.handleRefreshKYC)
	})

	r.Post("/sellers", sellerHandler.handleRegisterSeller)

	r.Post("/checkout", settlementHandler.handleCheckout)
	r.Post("/payments/webhook", settlementHandler.handlePaymentWebhook)

	r.Route("/transactions/{id}", func(r chi.Router) {
		r.Get("/", settlementHandler.handleGetTransaction)
		r.Post("/ship", settlementHandler.handleMarkShipped)
		r.Post("/deliver", settlementHandler.handleMarkDelivered)
		r.Post("/complete", settlementHandler.handleComplete)
		r.Post("/dispute", settlementHandler.handleOpenDispute)
		r.Post("/refund", settlementHandler.handleRefund)
	})

	r.Get("/buyers/{id}/transactions", settlementHandler.handleGetBuyerTransactions)

	r.Get("/fees/effective-rate", adminHandler.handleEffectiveRate)
	r.Route("/admin", func(r chi.Router) {
		r.Get("/fee-policy", adminHandler.handleGetFeePolicy)
		r.Put("/fee-policy", adminHandler.handleUpdateFeePolicy)
		r.Put("/sellers/{id}/tier", adminHandler.handleUpdateSellerTier)
		r.Put("/sellers/{id}/zero-fee", adminHandler.handleSetZeroFee)
	})

	return r
}

func actorID(r *http.Request) string {
	return r.Header.Get("X-Actor-ID")
}
