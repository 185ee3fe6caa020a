package leaders

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"azadi_backend/internals/features/home/leaders/model"
	"azadi_backend/internals/features/home/leaders/repository"
)

//go:embed data_leaders.json
var dataLeaders []byte

// PlaceholderImage is a 1x1 PNG used until an admin uploads real portraits.
const PlaceholderImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

type LeaderSeed struct {
	Name       string `json:"name"`
	NameEn     string `json:"nameEn"`
	Position   string `json:"position"`
	PositionEn string `json:"positionEn"`
	Quote      string `json:"quote"`
	QuoteEn    string `json:"quoteEn"`
}

// SeedLeaders inserts the committee when the leaders table is empty.
func SeedLeaders(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&model.Leader{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int64("leaders", n).Msg("ℹ️ leaders already seeded, skipping")
		return nil
	}

	var seeds []LeaderSeed
	if err := sonic.Unmarshal(dataLeaders, &seeds); err != nil {
		return fmt.Errorf("decode leaders seed: %w", err)
	}

	repo := repository.NewLeaderRepository(db)
	for _, s := range seeds {
		row := model.Leader{
			Name:       s.Name,
			NameEn:     s.NameEn,
			Position:   s.Position,
			PositionEn: s.PositionEn,
			Quote:      s.Quote,
			QuoteEn:    s.QuoteEn,
			Image:      PlaceholderImage,
		}
		if err := repo.Create(ctx, &row); err != nil {
			return fmt.Errorf("seed leader %s: %w", s.NameEn, err)
		}
	}
	log.Info().Int("leaders", len(seeds)).Msg("✅ leaders seeded")
	return nil
}
