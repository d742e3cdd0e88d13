package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/dbtest"
	"github.com/mikios34/storefront-backend/entity"
	userpkg "github.com/mikios34/storefront-backend/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepo(dbtest.New(t))

	u, err := repo.StoreUser(ctx, &entity.User{Name: "Bob", Email: "bob@example.com", Role: entity.RoleCustomer})
	require.NoError(t, err)

	got, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)

	_, err = repo.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, userpkg.ErrUserNotFound)

	exists, err := repo.EmailExists(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
