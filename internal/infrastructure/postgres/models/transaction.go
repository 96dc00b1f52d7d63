package models

import (
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionModel struct {
	ID               string                   `gorm:"primaryKey;type:uuid"`
	ReferenceCode    string                   `gorm:"uniqueIndex;not null"`
	ListingID        string                   `gorm:"type:uuid;not null;index:idx_tx_listing"`
	Listing          ListingModel             `gorm:"foreignKey:ListingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BuyerID          string                   `gorm:"type:uuid;not null;index:idx_tx_buyer"`
	SellerID         string                   `gorm:"type:uuid;not null;index:idx_tx_seller"`
	Amount           decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	Currency         string                   `gorm:"type:char(3);not null"`
	CommissionRate   decimal.Decimal          `gorm:"type:numeric(6,4);not null"`
	CommissionAmount decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	NetAmount        decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	Status           domain.TransactionStatus `gorm:"not null;index:idx_tx_status_created"`
	FailureReason    string
	CreatedAt        time.Time                `gorm:"index:idx_tx_status_created"`
	UpdatedAt        time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}
