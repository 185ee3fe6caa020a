package repository

import (
	"context"

	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/donations/model"
	"azadi_backend/internals/storage"
)

type DonationRepository struct {
	*storage.Repository[model.Donation]
}

// NewDonationRepository lists newest first.
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{storage.NewRepository[model.Donation](db, storage.Desc("created_at"))}
}

func (r *DonationRepository) ListApproved(ctx context.Context) ([]model.Donation, error) {
	return r.List(ctx, storage.Where("status", model.StatusApproved))
}

// SetStatus changes only the status column.
func (r *DonationRepository) SetStatus(ctx context.Context, id, status string) (*model.Donation, error) {
	return r.Update(ctx, id, map[string]any{"status": status})
}
