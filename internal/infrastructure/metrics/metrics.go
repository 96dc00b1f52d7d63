package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics covers the listing lifecycle and settlement flow.
type MarketplaceMetrics struct {
	ListingsCreatedTotal   prometheus.CounterVec
	ListingsSubmittedTotal prometheus.CounterVec
	ListingsApprovedTotal  prometheus.CounterVec
	ListingsRejectedTotal  prometheus.CounterVec
	ListingsSoldTotal      prometheus.CounterVec
	ListingsArchivedTotal  prometheus.CounterVec

	QuotaDeniedTotal prometheus.CounterVec

	SettlementsTotal          prometheus.CounterVec
	SettlementAmountTotal     prometheus.CounterVec
	SettlementCommissionTotal prometheus.CounterVec
	SettlementConflictsTotal  prometheus.CounterVec
	SettlementDuration        prometheus.HistogramVec

	PaymentOutcomesTotal prometheus.CounterVec

	ErrorsTotal prometheus.CounterVec
}

func NewMarketplaceMetrics() *MarketplaceMetrics {
	return &MarketplaceMetrics{
		ListingsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_created_total",
				Help: "Listings created as drafts",
			},
			[]string{"tier"},
		),

		ListingsSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_submitted_total",
				Help: "Listings submitted for review",
			},
			[]string{"tier"},
		),

		ListingsApprovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_approved_total",
				Help: "Listings approved by moderation",
			},
			[]string{"tier"},
		),

		ListingsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_rejected_total",
				Help: "Listings rejected by moderation",
			},
			[]string{"tier"},
		),

		ListingsSoldTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_sold_total",
				Help: "Listings sold through settlement",
			},
			[]string{"tier", "currency"},
		),

		ListingsArchivedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_archived_total",
				Help: "Listings withdrawn by owner or admin",
			},
			[]string{"tier"},
		),

		QuotaDeniedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listing_quota_denied_total",
				Help: "Listing creations denied by tier quota",
			},
			[]string{"tier"},
		),

		SettlementsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlements_total",
				Help: "Settlements by outcome",
			},
			[]string{"outcome", "currency"},
		),

		SettlementAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_amount_total",
				Help: "Gross settled amount",
			},
			[]string{"currency"},
		),

		SettlementCommissionTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_commission_total",
				Help: "Commission recorded at settlement",
			},
			[]string{"currency", "tier"},
		),

		SettlementConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_conflicts_total",
				Help: "Purchase attempts that lost the listing race",
			},
			[]string{"currency"},
		),

		SettlementDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_duration_seconds",
				Help:    "Time from checkout request to persisted settlement",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),

		PaymentOutcomesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_outcomes_total",
				Help: "Payment webhook outcomes",
			},
			[]string{"outcome"},
		),

		ErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_errors_total",
				Help: "Errors by kind",
			},
			[]string{"operation", "kind"},
		),
	}
}
