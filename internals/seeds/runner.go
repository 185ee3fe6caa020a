package seeds

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"azadi_backend/internals/configs"
	"azadi_backend/internals/seeds/admin"
	"azadi_backend/internals/seeds/leaders"
	"azadi_backend/internals/seeds/pages"
)

// RunAllSeeds is idempotent: each seed skips tables that already hold data.
func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg *configs.Config) error {
	//* Pages
	if err := pages.SeedPages(ctx, db); err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}

	//* Leaders
	if err := leaders.SeedLeaders(ctx, db); err != nil {
		return fmt.Errorf("seed leaders: %w", err)
	}

	//* Admin
	if err := admin.SeedAdminUser(ctx, db, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
