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

func TestGormAdminRepo(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewGormAdminRepo(db)

	exists, err := repo.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	u := &entity.User{Name: "Dana", Email: "dana@example.com", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(u).Error)

	promoted, err := repo.SetRole(ctx, u.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)

	exists, err = repo.AdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.SetRole(ctx, uuid.New(), entity.RoleAdmin)
	assert.ErrorIs(t, err, userpkg.ErrUserNotFound)
}
