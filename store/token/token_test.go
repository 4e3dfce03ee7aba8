package token_test

import (
	"context"
	"path/filepath"
	"testing"

	"dsc/core"
	"dsc/pkg/number"
	"dsc/store"
	"dsc/store/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testStore(t *testing.T) (*token.Store, *gorm.DB) {
	t.Helper()

	db := store.MustOpen(store.Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "token.db"),
	})
	require.NoError(t, token.Migrate(db))

	return token.New(db), db
}

func TestCreditDebit(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Credit(ctx, db, "WETH", "alice", number.Decimal("10")))
	require.NoError(t, s.Debit(ctx, db, "WETH", "alice", number.Decimal("4")))

	balance, err := s.Find(ctx, "WETH", "alice")
	require.NoError(t, err)
	assert.True(t, number.Decimal("6").Equal(balance))
}

func TestDebitInsufficient(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Debit(ctx, db, "WETH", "alice", number.Decimal("1")), core.ErrInsufficientBalance)

	require.NoError(t, s.Credit(ctx, db, "WETH", "alice", number.Decimal("1")))
	assert.ErrorIs(t, s.Debit(ctx, db, "WETH", "alice", number.Decimal("2")), core.ErrInsufficientBalance)

	// a failed debit leaves the balance untouched
	balance, err := s.Find(ctx, "WETH", "alice")
	require.NoError(t, err)
	assert.True(t, number.Decimal("1").Equal(balance))
}

func TestSum(t *testing.T) {
	s, db := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Credit(ctx, db, "DSC", "alice", number.Decimal("100")))
	require.NoError(t, s.Credit(ctx, db, "DSC", "bob", number.Decimal("50")))
	require.NoError(t, s.Credit(ctx, db, "WETH", "bob", number.Decimal("7")))

	sum, err := s.Sum(ctx, "DSC")
	require.NoError(t, err)
	assert.True(t, number.Decimal("150").Equal(sum))
}

func TestFindMissingIsZero(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	balance, err := s.Find(ctx, "WETH", "nobody")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
