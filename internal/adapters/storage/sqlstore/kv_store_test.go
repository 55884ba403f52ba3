package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/storage/sqlstore"
	"pet-adoption/internal/platform/database"
	"pet-adoption/internal/testutil"
)

func TestKVStore_GetMissing(t *testing.T) {
	s := sqlstore.NewKVStore(testutil.NewTestDB(t), database.DriverSQLite)

	v, found, err := s.Get(context.Background(), "bolt_favorites")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestKVStore_SetThenGet_Upserts(t *testing.T) {
	s := sqlstore.NewKVStore(testutil.NewTestDB(t), database.DriverSQLite)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "bolt_favorites", `["p1"]`))
	require.NoError(t, s.Set(ctx, "bolt_favorites", `["p1","p7"]`))
	require.NoError(t, s.Set(ctx, "other", `x`))

	v, found, err := s.Get(ctx, "bolt_favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["p1","p7"]`, v)

	v, found, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", v)
}

func TestKVStore_EmptyValueIsFound(t *testing.T) {
	s := sqlstore.NewKVStore(testutil.NewTestDB(t), database.DriverSQLite)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", ""))

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, v)
}
