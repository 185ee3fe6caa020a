package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a query (filters, extra ordering).
type Scope = func(*gorm.DB) *gorm.DB

// CRUD is the storage port collection features are written against.
type CRUD[T any] interface {
	List(ctx context.Context, scopes ...Scope) ([]T, error)
	Page(ctx context.Context, offset, limit int, scopes ...Scope) ([]T, int64, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, id string, updates map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Repository is the GORM implementation of CRUD; it runs on every Backend.
type Repository[T any] struct {
	db    *gorm.DB
	order []clause.OrderByColumn
}

var _ CRUD[struct{}] = (*Repository[struct{}])(nil)

// NewRepository builds a repository with a default listing order.
func NewRepository[T any](db *gorm.DB, order ...clause.OrderByColumn) *Repository[T] {
	if len(order) == 0 {
		order = []clause.OrderByColumn{Asc("created_at")}
	}
	return &Repository[T]{db: db, order: order}
}

func Asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

func Desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

// Where is a Scope for a single equality filter.
func Where(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *Repository[T]) ordered(q *gorm.DB) *gorm.DB {
	for _, o := range r.order {
		q = q.Order(o)
	}
	return q
}

func (r *Repository[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	rows := make([]T, 0)
	q := r.ordered(r.DB(ctx).Model(new(T)).Scopes(scopes...))
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[T]) Page(ctx context.Context, offset, limit int, scopes ...Scope) ([]T, int64, error) {
	var total int64
	if err := r.DB(ctx).Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]T, 0)
	q := r.ordered(r.DB(ctx).Model(new(T)).Scopes(scopes...)).Offset(offset).Limit(limit)
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	var row T
	if err := r.DB(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	return r.DB(ctx).Create(row).Error
}

// Update applies column updates to one row and returns the stored result.
// Only the given columns are written, so sibling fields stay untouched.
func (r *Repository[T]) Update(ctx context.Context, id string, updates map[string]any) (*T, error) {
	var row T
	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&row).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&row, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	res := r.DB(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound is a convenience for callers outside the package.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
