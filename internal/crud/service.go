// Package crud maps soft-delete repository results onto the typed errors the
// HTTP layer understands. Entity packages embed Service and add their own
// create and update inputs on top.
package crud

import (
	"context"
	"errors"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

// Store is the slice of softdelete.Repository the service needs.
type Store[T softdelete.Model] interface {
	Create(ctx context.Context, row *T) (uint64, error)
	Update(ctx context.Context, id uint64, fields map[string]any) (int64, error)
	SoftDelete(ctx context.Context, id uint64) (int64, error)
	GetByID(ctx context.Context, id uint64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Page(ctx context.Context, page, limit int) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

// Service implements the operations every entity shares.
type Service[T softdelete.Model, D any] struct {
	entity string
	store  Store[T]
	toDTO  func(*T) D
}

// New builds a service for entity. toDTO converts a row to its response shape.
func New[T softdelete.Model, D any](entity string, store Store[T], toDTO func(*T) D) *Service[T, D] {
	return &Service[T, D]{entity: entity, store: store, toDTO: toDTO}
}

// Entity returns the name used in error messages.
func (s *Service[T, D]) Entity() string {
	return s.entity
}

// Insert persists row. A unique key collision becomes a conflict error.
func (s *Service[T, D]) Insert(ctx context.Context, row *T) (uint64, error) {
	id, err := s.store.Create(ctx, row)
	if err != nil {
		return 0, s.MapError(err, "create")
	}
	return id, nil
}

// Patch applies fields to the live row; zero affected rows is not found.
func (s *Service[T, D]) Patch(ctx context.Context, id uint64, fields map[string]any) error {
	affected, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return s.MapError(err, "update")
	}
	if affected == 0 {
		return pkgerrors.NotFound(s.entity)
	}
	return nil
}

func (s *Service[T, D]) Delete(ctx context.Context, id uint64) error {
	affected, err := s.store.SoftDelete(ctx, id)
	if err != nil {
		return s.MapError(err, "delete")
	}
	if affected == 0 {
		return pkgerrors.NotFound(s.entity)
	}
	return nil
}

func (s *Service[T, D]) Get(ctx context.Context, id uint64) (D, error) {
	var zero D
	row, err := s.store.GetByID(ctx, id)
	if err != nil {
		return zero, s.MapError(err, "load")
	}
	if row == nil {
		return zero, pkgerrors.NotFound(s.entity)
	}
	return s.toDTO(row), nil
}

func (s *Service[T, D]) List(ctx context.Context) ([]D, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, s.MapError(err, "list")
	}
	return s.ToDTOs(rows), nil
}

// Page returns one page of live rows together with the live row count.
func (s *Service[T, D]) Page(ctx context.Context, params pagination.Params) (pagination.Result[D], error) {
	params = params.Normalize()
	rows, err := s.store.Page(ctx, params.Page, params.Limit)
	if err != nil {
		return pagination.Result[D]{}, s.MapError(err, "page")
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return pagination.Result[D]{}, s.MapError(err, "count")
	}
	return pagination.Result[D]{
		Data:  s.ToDTOs(rows),
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
	}, nil
}

func (s *Service[T, D]) Count(ctx context.Context) (int64, error) {
	total, err := s.store.Count(ctx)
	if err != nil {
		return 0, s.MapError(err, "count")
	}
	return total, nil
}

// ToDTOs converts rows, always returning a non-nil slice.
func (s *Service[T, D]) ToDTOs(rows []T) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, s.toDTO(&rows[i]))
	}
	return out
}

// MapError turns repository errors into typed errors.
func (s *Service[T, D]) MapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case pkgerrors.As(err) != nil:
		return err
	case errors.Is(err, softdelete.ErrConflict):
		return pkgerrors.Conflict(s.entity, err)
	case errors.Is(err, softdelete.ErrUnknownField):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown filter field")
	case errors.Is(err, softdelete.ErrInvalidPage):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "page and limit must be positive")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op+" "+s.entity)
}
