package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/configs"
	"azadi_backend/internals/storage"
)

var DB *gorm.DB

// ConnectDB opens the configured backend, pings it and stores the handle in DB.
func ConnectDB(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	backend, err := storage.NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", backend.Name()).Msg("🔌 connecting to database")

	db, err := storage.Open(backend, cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("ping %s: %w", backend.Name(), err)
	}

	DB = db
	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}
