package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/features/users/admin/repository"
)

const defaultSpec = "@every 1h"

// StartBlacklistCleanupScheduler purges expired revoked sessions on spec (cron syntax).
// The returned cron must be stopped on shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB, spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = defaultSpec
	}
	repo := repository.NewAdminRepository(db)

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		runCleanup(ctx, repo)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Str("spec", spec).Msg("[CLEANUP] token_blacklist scheduler started")
	return c, nil
}

func runCleanup(ctx context.Context, repo *repository.AdminRepository) {
	n, err := repo.PurgeExpired(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("[CLEANUP ERROR] purge token_blacklist")
		return
	}
	if n > 0 {
		log.Info().Int64("deleted", n).Msg("[CLEANUP] expired tokens removed")
	}
}
