package vault_test

import (
	"context"
	"path/filepath"
	"testing"

	"dsc/core"
	"dsc/pkg/number"
	"dsc/store"
	"dsc/store/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testStore(t *testing.T) (core.IVaultStore, *gorm.DB) {
	t.Helper()

	db := store.MustOpen(store.Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "vault.db"),
	})
	require.NoError(t, vault.Migrate(db))

	return vault.New(db), db
}

func TestVaultAddSub(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, db, "alice", "WETH", number.Decimal("10")))
	require.NoError(t, s.Add(ctx, db, "alice", "WETH", number.Decimal("2.5")))

	collateral, err := s.Find(ctx, "alice", "WETH")
	require.NoError(t, err)
	assert.True(t, number.Decimal("12.5").Equal(collateral.Balance))

	require.NoError(t, s.Sub(ctx, db, "alice", "WETH", number.Decimal("12.5")))

	collateral, err = s.Find(ctx, "alice", "WETH")
	require.NoError(t, err)
	assert.True(t, collateral.Balance.IsZero())
}

func TestVaultSubInsufficient(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Sub(ctx, db, "alice", "WETH", number.Decimal("1")), core.ErrInsufficientCollateral)

	require.NoError(t, s.Add(ctx, db, "alice", "WETH", number.Decimal("1")))
	assert.ErrorIs(t, s.Sub(ctx, db, "alice", "WETH", number.Decimal("1.000000000000000001")), core.ErrInsufficientCollateral)
}

func TestVaultFindMissingIsZero(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	collateral, err := s.Find(ctx, "nobody", "WETH")
	require.NoError(t, err)
	assert.True(t, collateral.Balance.IsZero())
	assert.Equal(t, "nobody", collateral.UserID)
}

func TestVaultUsers(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, db, "alice", "WETH", number.Decimal("1")))
	require.NoError(t, s.Add(ctx, db, "alice", "WBTC", number.Decimal("1")))
	require.NoError(t, s.Add(ctx, db, "bob", "WETH", number.Decimal("1")))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, users)
}
