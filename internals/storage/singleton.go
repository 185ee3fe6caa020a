package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonID is the fixed primary key of every single-row content table.
// The primary key constraint is what keeps those tables at one row.
const SingletonID = "00000000-0000-0000-0000-000000000001"

// UpsertSingleton writes row under SingletonID in one statement.
// On conflict only the listed columns (plus updated_at) are overwritten.
func UpsertSingleton[T any](ctx context.Context, db *gorm.DB, row *T, columns []string) (*T, error) {
	cols := append(append([]string{}, columns...), "updated_at")
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}
	return GetSingleton[T](ctx, db)
}

// GetSingleton returns the row or nil when the page was never saved.
func GetSingleton[T any](ctx context.Context, db *gorm.DB) (*T, error) {
	var out T
	err := db.WithContext(ctx).First(&out, "id = ?", SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SeedSingleton inserts defaults unless the row already exists.
func SeedSingleton[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(row).Error
}

// Singleton is the repository of a single-row content table.
type Singleton[T any] struct {
	db   *gorm.DB
	rows *Repository[T]
}

func NewSingleton[T any](db *gorm.DB) *Singleton[T] {
	return &Singleton[T]{db: db, rows: NewRepository[T](db)}
}

func (s *Singleton[T]) Get(ctx context.Context) (*T, error) {
	return GetSingleton[T](ctx, s.db)
}

func (s *Singleton[T]) Upsert(ctx context.Context, row *T, columns []string) (*T, error) {
	return UpsertSingleton(ctx, s.db, row, columns)
}

// Update patches the row by id; any id other than the stored one is ErrNotFound.
func (s *Singleton[T]) Update(ctx context.Context, id string, updates map[string]any) (*T, error) {
	return s.rows.Update(ctx, id, updates)
}

func (s *Singleton[T]) Seed(ctx context.Context, row *T) error {
	return SeedSingleton(ctx, s.db, row)
}
