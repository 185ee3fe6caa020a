package repository

import (
	"context"

	"gorm.io/gorm"

	"azadi_backend/internals/features/users/members/model"
	"azadi_backend/internals/storage"
)

type MemberRepository struct {
	*storage.Repository[model.Member]
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{storage.NewRepository[model.Member](db)}
}

// FindByUsername returns storage.ErrNotFound when nobody has that username.
func (r *MemberRepository) FindByUsername(ctx context.Context, username string) (*model.Member, error) {
	rows, err := r.List(ctx, storage.Where("username", username))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrNotFound
	}
	return &rows[0], nil
}

// UpdatePassword replaces the stored password hash.
func (r *MemberRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	_, err := r.Update(ctx, id, map[string]any{"password": hash})
	return err
}
