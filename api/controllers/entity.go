package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/shopadmin-backend/api/responses"
	"github.com/angelmondragon/shopadmin-backend/api/validators"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/logger"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
)

// EntityService is implemented by every entity service in internal/.
type EntityService[In any, D any] interface {
	Create(ctx context.Context, input In) (uint64, error)
	Update(ctx context.Context, id uint64, input In) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (D, error)
	List(ctx context.Context) ([]D, error)
	Page(ctx context.Context, params pagination.Params) (pagination.Result[D], error)
}

// EntityHandlers serves the CRUD routes of one entity.
type EntityHandlers[In any, D any] struct {
	entity string
	svc    EntityService[In, D]
	logg   *logger.Logger
}

func NewEntityHandlers[In any, D any](entity string, svc EntityService[In, D], logg *logger.Logger) *EntityHandlers[In, D] {
	return &EntityHandlers[In, D]{entity: entity, svc: svc, logg: logg}
}

func (h *EntityHandlers[In, D]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body In
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		id, err := h.svc.Create(ctx, body)
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		h.logMutation(ctx, id, "entity.created")
		responses.WriteMutation(w, http.StatusCreated, fmt.Sprintf("%s created successfully", h.entity), id)
	}
}

func (h *EntityHandlers[In, D]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "id", pkgerrors.NotFound(h.entity))
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		var body In
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		if err := h.svc.Update(ctx, id, body); err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		h.logMutation(ctx, id, "entity.updated")
		responses.WriteMutation(w, http.StatusOK, fmt.Sprintf("%s updated successfully", h.entity), id)
	}
}

func (h *EntityHandlers[In, D]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "id", pkgerrors.NotFound(h.entity))
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		if err := h.svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		h.logMutation(ctx, id, "entity.deleted")
		responses.WriteMutation(w, http.StatusOK, fmt.Sprintf("%s deleted successfully", h.entity), id)
	}
}

// Get writes the bare entity object.
func (h *EntityHandlers[In, D]) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "id", pkgerrors.NotFound(h.entity))
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		dto, err := h.svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, dto)
	}
}

// List writes a bare array of every live entity.
func (h *EntityHandlers[In, D]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), h.logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, items)
	}
}

func (h *EntityHandlers[In, D]) Page() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}

		page, err := h.svc.Page(ctx, params)
		if err != nil {
			responses.WriteError(ctx, h.logg, w, err)
			return
		}
		responses.WritePage(w, page.Data, page.Page, page.Limit, page.Total)
	}
}

func (h *EntityHandlers[In, D]) logMutation(ctx context.Context, id uint64, msg string) {
	if h.logg == nil {
		return
	}
	h.logg.Info(h.logg.WithEntity(ctx, h.entity, id), msg)
}
