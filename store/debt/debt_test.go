package debt_test

import (
	"context"
	"path/filepath"
	"testing"

	"dsc/core"
	"dsc/pkg/number"
	"dsc/store"
	"dsc/store/debt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testStore(t *testing.T) (core.IDebtStore, *gorm.DB) {
	t.Helper()

	db := store.MustOpen(store.Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "debt.db"),
	})
	require.NoError(t, debt.Migrate(db))

	return debt.New(db), db
}

func TestDebtAddSub(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, db, "alice", number.Decimal("5000")))
	require.NoError(t, s.Add(ctx, db, "alice", number.Decimal("2000")))

	position, err := s.Find(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, number.Decimal("7000").Equal(position.Principal))

	require.NoError(t, s.Sub(ctx, db, "alice", number.Decimal("7000")))

	position, err = s.Find(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, position.Principal.IsZero())
}

func TestDebtSubInsufficient(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Sub(ctx, db, "alice", number.Decimal("1")), core.ErrInsufficientDebt)

	require.NoError(t, s.Add(ctx, db, "alice", number.Decimal("100")))
	assert.ErrorIs(t, s.Sub(ctx, db, "alice", number.Decimal("100.000000000000000001")), core.ErrInsufficientDebt)
}

func TestDebtFindMissingIsZero(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	position, err := s.Find(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, position.Principal.IsZero())
	assert.Equal(t, "nobody", position.UserID)
}

func TestDebtUsers(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, db, "alice", number.Decimal("1")))
	require.NoError(t, s.Add(ctx, db, "bob", number.Decimal("2")))
	require.NoError(t, s.Add(ctx, db, "alice", number.Decimal("3")))

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, users)
}
