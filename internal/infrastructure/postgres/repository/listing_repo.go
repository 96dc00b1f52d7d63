package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/horotrade/horotrade-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

var activeListingStatuses = []domain.ListingStatus{
	domain.ListingDraft,
	domain.ListingPendingReview,
	domain.ListingApproved,
}

type DefaultListingRepository struct {
	DB *gorm.DB
}

func NewDefaultListingRepository(db *gorm.DB) *DefaultListingRepository {
	return &DefaultListingRepository{DB: db}
}

func (r *DefaultListingRepository) CreateListing(listing *domain.Listing) error {
	listingModel := mappers.ToGORMListing(listing)
	if err := r.DB.Create(listingModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultListingRepository) GetListingByID(listingID string) (*domain.Listing, error) {
	var listing models.ListingModel
	if err := r.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	return mappers.ToDomainListing(&listing), nil
}

func (r *DefaultListingRepository) GetListingsBySellerID(
	sellerID string,
	page, limit int64,
	statuses []domain.ListingStatus,
) ([]*domain.Listing, int64, error) {
	var listingModels []models.ListingModel
	var total int64

	baseQuery := r.DB.Model(&models.ListingModel{}).Where("seller_id = ?", sellerID)
	if len(statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", statuses)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&listingModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find listings: %w", err)
	}

	listings := make([]*domain.Listing, len(listingModels))
	for i, listingModel := range listingModels {
		listings[i] = mappers.ToDomainListing(&listingModel)
	}

	return listings, total, nil
}

func (r *DefaultListingRepository) CountActiveListings(sellerID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ListingModel{}).
		Where("seller_id = ?", sellerID).
		Where("status IN (?)", activeListingStatuses).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// transitionIf performs a status-guarded conditional update. The guard
// and the write happen in one UPDATE, so two racing callers cannot both
// observe the old status.
func (r *DefaultListingRepository) transitionIf(listingID string, from, to domain.ListingStatus, updates map[string]interface{}) (bool, error) {
	updates["status"] = to
	updates["updated_at"] = time.Now()
	result := r.DB.Model(&models.ListingModel{}).
		Where("id = ? AND status = ?", listingID, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultListingRepository) SubmitListing(listingID string, submittedAt time.Time) (bool, error) {
	return r.transitionIf(listingID, domain.ListingDraft, domain.ListingPendingReview, map[string]interface{}{
		"submitted_at": submittedAt,
	})
}

func (r *DefaultListingRepository) ApproveListing(listingID, adminID string, approvedAt time.Time) (bool, error) {
	return r.transitionIf(listingID, domain.ListingPendingReview, domain.ListingApproved, map[string]interface{}{
		"approved_at": approvedAt,
		"approved_by": adminID,
	})
}

func (r *DefaultListingRepository) RejectListing(listingID, reason string) (bool, error) {
	return r.transitionIf(listingID, domain.ListingPendingReview, domain.ListingRejected, map[string]interface{}{
		"rejected_reason": reason,
	})
}

func (r *DefaultListingRepository) ResubmitListing(listingID string) (bool, error) {
	return r.transitionIf(listingID, domain.ListingRejected, domain.ListingDraft, map[string]interface{}{
		"rejected_reason": "",
		"approved_at":     nil,
		"approved_by":     "",
		"submitted_at":    nil,
	})
}

func (r *DefaultListingRepository) ArchiveListing(listingID string) (bool, error) {
	result := r.DB.Model(&models.ListingModel{}).
		Where("id = ? AND status IN (?)", listingID, activeListingStatuses).
		Updates(map[string]interface{}{
			"status":     domain.ListingArchived,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultListingRepository) ReleaseListing(listingID string) (bool, error) {
	return r.transitionIf(listingID, domain.ListingSold, domain.ListingApproved, map[string]interface{}{})
}
