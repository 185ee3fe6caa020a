package admin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/features/users/admin/model"
	"azadi_backend/internals/features/users/admin/repository"
	"azadi_backend/internals/features/users/admin/service"
)

// SeedAdminUser creates the first admin account when the users table is empty.
func SeedAdminUser(ctx context.Context, db *gorm.DB, username, password string) error {
	repo := repository.NewAdminRepository(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int64("users", n).Msg("ℹ️ admin user already exists, skipping seed")
		return nil
	}
	if password == "" {
		log.Warn().Msg("⚠️ ADMIN_PASSWORD not set, admin user not seeded")
		return nil
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := repo.Create(ctx, &model.User{Username: username, Password: hash}); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("✅ admin user seeded")
	return nil
}
