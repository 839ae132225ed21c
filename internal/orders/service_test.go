package orders

import (
	"context"
	"testing"
	"time"

	"github.com/artlease-io/artlease-backend/pkg/enums"
	pkgerrors "github.com/artlease-io/artlease-backend/pkg/errors"
	"github.com/artlease-io/artlease-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceGetOwnership(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	ownerID := uuid.New()
	strangerID := uuid.New()
	order := seedOrder(t, conn, &ownerID, time.Now().UTC(), 1)

	ctx := context.Background()

	got, err := svc.Get(ctx, Actor{UserID: ownerID, Role: enums.RoleCustomer}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)

	// a stranger's probe must not reveal that the order exists
	_, err = svc.Get(ctx, Actor{UserID: strangerID, Role: enums.RoleCustomer}, order.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	got, err = svc.Get(ctx, Actor{UserID: strangerID, Role: enums.RoleAdmin}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestServiceGetGuestOrderOnlyAdmin(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	order := seedOrder(t, conn, nil, time.Now().UTC(), 1)
	ctx := context.Background()

	_, err = svc.Get(ctx, Actor{UserID: uuid.New(), Role: enums.RoleCustomer}, order.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	got, err := svc.Get(ctx, Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
}

func TestServiceListMine(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	userID := uuid.New()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	seedOrder(t, conn, &userID, base, 1)
	seedOrder(t, conn, &userID, base.Add(time.Hour), 2)
	otherID := uuid.New()
	seedOrder(t, conn, &otherID, base, 1)

	orders, err := svc.ListMine(context.Background(), Actor{UserID: userID, Role: enums.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 2)

	_, err = svc.ListMine(context.Background(), Actor{Role: enums.RoleCustomer})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestServiceListAllAdminOnly(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedOrder(t, conn, nil, base.Add(time.Duration(i)*time.Hour), 1)
	}

	_, err = svc.ListAll(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleCustomer}, pagination.Params{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())

	page, err := svc.ListAll(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Orders, 2)
	require.NotEmpty(t, page.NextCursor)

	rest, err := svc.ListAll(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, pagination.Params{Limit: 2, Cursor: page.NextCursor})
	require.NoError(t, err)
	require.Len(t, rest.Orders, 1)
	assert.Empty(t, rest.NextCursor)
}
