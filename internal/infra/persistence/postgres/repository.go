package postgres

import (
	"context"

	"gorm.io/gorm"
)

// repo is a generic keyed accessor over one GORM model type. The concrete
// repositories compose it rather than inheriting from a base type; each of
// them adds its own domain-specific lookups on top.
//
// The session callback yields the connection of the owning unit of work, so
// reads issued inside an explicit transaction see that transaction's state.
type repo[T any] struct {
	session func() *gorm.DB
}

// findByID fetches a row by primary key. Absence surfaces as
// gorm.ErrRecordNotFound for the caller to map to its domain sentinel.
func (r repo[T]) findByID(ctx context.Context, id int64) (*T, error) {
	out := new(T)
	if err := r.session().WithContext(ctx).First(out, id).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// first fetches the first row matching the condition.
func (r repo[T]) first(ctx context.Context, query any, args ...any) (*T, error) {
	out := new(T)
	if err := r.session().WithContext(ctx).Where(query, args...).First(out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// findAll fetches every row matching the condition in the given order.
func (r repo[T]) findAll(ctx context.Context, order string, query any, args ...any) ([]*T, error) {
	var out []*T
	tx := r.session().WithContext(ctx).Model(new(T))
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// exists reports whether any row matches the condition.
func (r repo[T]) exists(ctx context.Context, query any, args ...any) (bool, error) {
	count, err := r.count(ctx, query, args...)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// count counts matching rows; a nil query counts the whole table.
func (r repo[T]) count(ctx context.Context, query any, args ...any) (int64, error) {
	var count int64
	tx := r.session().WithContext(ctx).Model(new(T))
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// findPaged returns one page of matching rows plus the total match count.
// The count is taken before the window is applied, so it always reflects
// the full filtered set. page is 1-based; the caller clamps page and
// pageSize before querying.
func (r repo[T]) findPaged(ctx context.Context, page, pageSize int, order string, query any, args ...any) ([]*T, int64, error) {
	total, err := r.count(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	var out []*T
	tx := r.session().WithContext(ctx).Model(new(T))
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset((page - 1) * pageSize).Limit(pageSize).Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}
