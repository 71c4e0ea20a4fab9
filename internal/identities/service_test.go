package identities

import (
	"context"
	"testing"

	"github.com/angelmondragon/shopadmin-backend/pkg/db/testdb"
	pkgerrors "github.com/angelmondragon/shopadmin-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(testdb.Open(t)))
	require.NoError(t, err)
	return svc
}

func jane() IdentityInput {
	return IdentityInput{LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", Phone: "0600000001"}
}

func TestIdentityLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	id, err := svc.Create(ctx, jane())
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestIdentityUniqueKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Create(ctx, jane())
	require.NoError(t, err)

	sameEmail := jane()
	sameEmail.Phone = "0600000002"
	_, err = svc.Create(ctx, sameEmail)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict), "email collision: %v", err)

	samePhone := jane()
	samePhone.Email = "other@example.com"
	_, err = svc.Create(ctx, samePhone)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict), "phone collision: %v", err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestIdentityUpdateIntoTakenEmail(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.Create(ctx, jane())
	require.NoError(t, err)
	otherID, err := svc.Create(ctx, IdentityInput{LastName: "Roe", FirstName: "Rick", Email: "rick@example.com", Phone: "0600000009"})
	require.NoError(t, err)

	err = svc.Update(ctx, otherID, IdentityInput{LastName: "Roe", FirstName: "Rick", Email: "jane@example.com", Phone: "0600000009"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
	assert.Equal(t, "identity already exists", typed.Message())
}

func TestIdentityNormalize(t *testing.T) {
	in := IdentityInput{LastName: " Doe ", FirstName: "Jane", Email: " Jane@Example.COM ", Phone: " 06 "}
	in.Normalize()
	assert.Equal(t, "Doe", in.LastName)
	assert.Equal(t, "jane@example.com", in.Email)
	assert.Equal(t, "06", in.Phone)
}
