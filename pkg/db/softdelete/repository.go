// Package softdelete implements the CRUD contract shared by every entity
// table: rows carry a boolean del column, reads only ever see rows where it
// is false, and deletion flips it instead of removing the row.
package softdelete

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/angelmondragon/shopadmin-backend/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	columnID  = "id"
	columnDel = "del"
)

var (
	// ErrConflict is returned when a write collides with a live row on one of
	// the table's unique keys. The driver error stays in the chain.
	ErrConflict = errors.New("softdelete: unique key already taken")
	// ErrUnknownField is returned for filters on columns outside the allowlist.
	ErrUnknownField = errors.New("softdelete: field not filterable")
	// ErrInvalidPage is returned when page or limit is below one.
	ErrInvalidPage = errors.New("softdelete: page and limit must be positive")
)

// Model is satisfied by every table model.
type Model interface {
	TableName() string
	PrimaryKey() uint64
}

// Field names a column that callers may filter on.
type Field string

// Repository runs single-statement queries against one soft-delete table.
type Repository[T Model] struct {
	db     *gorm.DB
	fields map[Field]struct{}
}

// New binds a repository to conn. filterable is the allowlist consulted by
// FindBy, FirstBy and UpdateBy.
func New[T Model](conn *gorm.DB, filterable ...Field) *Repository[T] {
	fields := make(map[Field]struct{}, len(filterable))
	for _, f := range filterable {
		fields[f] = struct{}{}
	}
	return &Repository[T]{db: conn, fields: fields}
}

// DB returns the connection bound to ctx.
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

func (r *Repository[T]) live(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: columnDel}, Value: false})
}

// Create inserts row and returns its generated id.
func (r *Repository[T]) Create(ctx context.Context, row *T) (uint64, error) {
	if err := r.DB(ctx).Create(row).Error; err != nil {
		return 0, translate(err)
	}
	return (*row).PrimaryKey(), nil
}

// Update applies fields to the live row with the given id and reports how
// many rows changed. Zero means the row is absent or already deleted.
func (r *Repository[T]) Update(ctx context.Context, id uint64, fields map[string]any) (int64, error) {
	res := r.live(ctx).Where(clause.Eq{Column: clause.Column{Name: columnID}, Value: id}).Updates(fields)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateBy applies fields to every live row whose field equals value.
func (r *Repository[T]) UpdateBy(ctx context.Context, field Field, value any, fields map[string]any) (int64, error) {
	if err := r.allowed(field); err != nil {
		return 0, err
	}
	res := r.live(ctx).Where(eq(field, value)).Updates(fields)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// SoftDelete marks the live row with the given id as deleted. Deleting a row
// twice affects zero rows the second time.
func (r *Repository[T]) SoftDelete(ctx context.Context, id uint64) (int64, error) {
	res := r.live(ctx).Where(clause.Eq{Column: clause.Column{Name: columnID}, Value: id}).Update(columnDel, true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// GetByID returns nil, nil when no live row has the id.
func (r *Repository[T]) GetByID(ctx context.Context, id uint64) (*T, error) {
	var row T
	err := r.live(ctx).Where(clause.Eq{Column: clause.Column{Name: columnID}, Value: id}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every live row ordered by id.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.live(ctx).Order(columnID + " ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Page returns the live rows at offset (page-1)*limit ordered by id, so
// consecutive pages never overlap while the table is not being written to.
func (r *Repository[T]) Page(ctx context.Context, page, limit int) ([]T, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPage
	}
	rows := make([]T, 0, limit)
	// an offset past math.MaxInt cannot address any row
	if page-1 > math.MaxInt/limit {
		return rows, nil
	}
	err := r.live(ctx).
		Order(columnID + " ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of live rows.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.live(ctx).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindBy returns the live rows whose field equals value, ordered by id.
func (r *Repository[T]) FindBy(ctx context.Context, field Field, value any) ([]T, error) {
	if err := r.allowed(field); err != nil {
		return nil, err
	}
	rows := make([]T, 0)
	if err := r.live(ctx).Where(eq(field, value)).Order(columnID + " ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FirstBy returns the lowest-id live row whose field equals value, or nil.
func (r *Repository[T]) FirstBy(ctx context.Context, field Field, value any) (*T, error) {
	if err := r.allowed(field); err != nil {
		return nil, err
	}
	var row T
	err := r.live(ctx).Where(eq(field, value)).Order(columnID + " ASC").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Filterable reports whether field is on the allowlist.
func (r *Repository[T]) Filterable(field Field) bool {
	_, ok := r.fields[field]
	return ok
}

func (r *Repository[T]) allowed(field Field) error {
	if !r.Filterable(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func eq(field Field, value any) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: string(field)}, Value: value}
}

func translate(err error) error {
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
