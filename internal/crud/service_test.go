package crud

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/models"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/softdelete"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/testdb"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/angelmondragon/shopadmin-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleView struct {
	ID   uint64
	Name string
}

func newRoleService(t *testing.T) *Service[models.Role, roleView] {
	t.Helper()
	repo := softdelete.New[models.Role](testdb.Open(t))
	return New[models.Role, roleView]("role", repo, func(r *models.Role) roleView {
		return roleView{ID: r.ID, Name: r.Name}
	})
}

func TestServiceConflictAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newRoleService(t)

	id, err := svc.Insert(ctx, &models.Role{Name: "Manager", Acronym: "MGR"})
	require.NoError(t, err)

	_, err = svc.Insert(ctx, &models.Role{Name: "Manager", Acronym: "MGR"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	assert.Equal(t, "role already exists", pkgerrors.As(err).Message())

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	err = svc.Delete(ctx, id)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	err = svc.Patch(ctx, id, map[string]any{"nom_role": "Other"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServicePage(t *testing.T) {
	ctx := context.Background()
	svc := newRoleService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.Insert(ctx, &models.Role{Name: fmt.Sprintf("role-%d", i), Acronym: fmt.Sprintf("R%d", i)})
		require.NoError(t, err)
	}

	page, err := svc.Page(ctx, pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, "role-2", page.Data[0].Name)

	page, err = svc.Page(ctx, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultPage, page.Page)
	assert.Equal(t, pagination.DefaultLimit, page.Limit)
	assert.Len(t, page.Data, 5)

	empty, err := svc.Page(ctx, pagination.Params{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
}

func TestServiceListEmpty(t *testing.T) {
	list, err := newRoleService(t).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMapError(t *testing.T) {
	svc := New[models.Role, roleView]("role", nil, nil)

	assert.Nil(t, svc.MapError(nil, "op"))

	typed := pkgerrors.NotFound("role")
	assert.Same(t, typed, svc.MapError(typed, "op"))

	err := svc.MapError(fmt.Errorf("%w: %q", softdelete.ErrUnknownField, "x"), "search")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	err = svc.MapError(errors.New("connection refused"), "list")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
	assert.Equal(t, "list role", pkgerrors.As(err).Message())
}
