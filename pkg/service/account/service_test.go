package account

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/dto"
	"github.com/amirasaad/accounts/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *testutils.FakeAccountRepository) {
	repo := testutils.NewFakeAccountRepository()
	return New(repo, slog.Default()), repo
}

func validCreate() dto.AccountCreate {
	return dto.AccountCreate{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "1 Main St",
	}
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.DateJoined.IsZero(), "date_joined is materialized on create")

	second, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService()
	create := validCreate()
	create.Email = ""

	created, err := svc.Create(context.Background(), create)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_GetNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.AccountUpdate{
		Name:       "Jane Doe",
		Email:      created.Email,
		Address:    created.Address,
		DateJoined: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestService_UpdateNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update(context.Background(), 99, dto.AccountUpdate{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Address: "2 Side St",
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestService_DeleteIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	// Deleting again is still a success
	assert.NoError(t, svc.Delete(ctx, created.ID))
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	accounts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
	}

	accounts, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
}
