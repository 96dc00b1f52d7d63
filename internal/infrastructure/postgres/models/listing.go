package models

import (
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ListingModel struct {
	ID              string                `gorm:"primaryKey;type:uuid"`
	ReferenceCode   string                `gorm:"uniqueIndex;not null"`
	SellerID        string                `gorm:"type:uuid;not null;index:idx_listing_seller_status"`
	Seller          SellerProfileModel    `gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Brand           string                `gorm:"not null"`
	Model           string                `gorm:"not null"`
	ReferenceNumber string
	Condition       domain.WatchCondition `gorm:"not null"`
	AskingPrice     decimal.Decimal       `gorm:"type:numeric(14,2);not null"`
	Currency        string                `gorm:"type:char(3);not null"`
	PhotoCount      int                   `gorm:"not null;default:0"`
	Status          domain.ListingStatus  `gorm:"not null;index:idx_listing_seller_status"`
	RejectedReason  string
	ApprovedAt      *time.Time
	ApprovedBy      string
	SubmittedAt     *time.Time
	CreatedAt       time.Time             `gorm:"index:idx_listing_created_at"`
	UpdatedAt       time.Time
}

func (ListingModel) TableName() string {
	return "listings"
}
