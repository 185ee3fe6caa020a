package repository

import (
	"context"

	"gorm.io/gorm"

	"azadi_backend/internals/features/donations/payment_methods/model"
	"azadi_backend/internals/storage"
)

type PaymentMethodRepository struct {
	*storage.Repository[model.PaymentMethod]
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{storage.NewRepository[model.PaymentMethod](db,
		storage.Asc("display_order"), storage.Asc("created_at"))}
}

func (r *PaymentMethodRepository) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	return r.List(ctx, storage.Where("active", true))
}
