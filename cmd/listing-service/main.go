package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/client"
	"github.com/horotrade/horotrade-listing-service/internal/config"
	"github.com/horotrade/horotrade-listing-service/internal/delivery/httpapi"
	publisher "github.com/horotrade/horotrade-listing-service/internal/infrastructure/kafka"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/metrics"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/migrate"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/repository"
	"github.com/horotrade/horotrade-listing-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ListingDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ListingDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.ListingTopic, cfg.KafkaService.TransactionTopic)

	// Init repos
	listingRepo := repository.NewDefaultListingRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)
	sellerRepo := repository.NewDefaultSellerRepository(db)
	feePolicyRepo := repository.NewDefaultFeePolicyRepository(db)

	// External collaborators
	paymentClient := client.NewHTTPPaymentClient(fmt.Sprintf("http://%s:%s", cfg.PaymentService.Host, cfg.PaymentService.Port))
	identityClient := client.NewHTTPIdentityClient(fmt.Sprintf("http://%s:%s", cfg.IdentityService.Host, cfg.IdentityService.Port))

	marketplaceMetrics := metrics.NewMarketplaceMetrics()

	// Init usecases
	listingUC := usecase.NewDefaultListingUsecase(listingRepo, sellerRepo, pub, marketplaceMetrics)
	settlementUC := usecase.NewDefaultSettlementUsecase(
		listingRepo,
		sellerRepo,
		transactionRepo,
		feePolicyRepo,
		paymentClient,
		pub,
		marketplaceMetrics,
	)
	feePolicyUC := usecase.NewDefaultFeePolicyUsecase(feePolicyRepo, sellerRepo)
	sellerUC := usecase.NewDefaultSellerUsecase(sellerRepo, identityClient)

	// HTTP delivery
	listingHandler := httpapi.NewListingHandler(listingUC)
	settlementHandler := httpapi.NewSettlementHandler(settlementUC)
	sellerHandler := httpapi.NewSellerHandler(sellerUC)
	adminHandler := httpapi.NewAdminHandler(listingUC, sellerUC, feePolicyUC)

	router := httpapi.NewRouter(listingHandler, settlementHandler, sellerHandler, adminHandler)

	// Release checkouts the buyer walked away from
	checkoutTTL := time.Duration(cfg.Checkout.TTLMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := settlementUC.ReleaseExpiredCheckouts(context.Background(), checkoutTTL); err != nil {
					log.Printf("expired checkout release error: %v", err)
				}
			}
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("listing service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
