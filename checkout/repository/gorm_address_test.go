package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/dbtest"
	"github.com/mikios34/storefront-backend/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAddressRepo(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewGormAddressRepo(db)
	uid := uuid.New()

	addr, err := repo.GetAddress(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, addr)

	require.NoError(t, repo.MergeAddress(ctx, uid, "1 Main St"))
	addr, err = repo.GetAddress(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", addr)

	require.NoError(t, repo.MergeAddress(ctx, uid, "9 New Rd"))
	addr, err = repo.GetAddress(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "9 New Rd", addr)

	var count int64
	require.NoError(t, db.Model(&entity.CustomerAddress{}).Where("uid = ?", uid).Count(&count).Error)
	assert.EqualValues(t, 1, count, "merge keeps one row per user")

	other, err := repo.GetAddress(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
