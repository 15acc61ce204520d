package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/transaction"
	"github.com/MrJamesThe3rd/khata/internal/transaction/store"
)

func batch(userID uuid.UUID, descriptions ...string) []*transaction.Transaction {
	txs := make([]*transaction.Transaction, len(descriptions))
	for i, d := range descriptions {
		txs[i] = &transaction.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Description: d,
		}
	}

	return txs
}

func TestStore_ReplaceForUser(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	userID := uuid.New()

	require.NoError(t, s.ReplaceForUser(ctx, userID, batch(userID, "first", "second")))

	got, err := s.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Description)
	assert.Equal(t, "second", got[1].Description)

	// A second upload replaces, never merges.
	require.NoError(t, s.ReplaceForUser(ctx, userID, batch(userID, "third")))

	got, err = s.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "third", got[0].Description)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, s.ReplaceForUser(ctx, alice, batch(alice, "rent")))
	require.NoError(t, s.ReplaceForUser(ctx, bob, batch(bob, "groceries", "fuel")))

	// Replacing alice's batch leaves bob's untouched.
	require.NoError(t, s.ReplaceForUser(ctx, alice, batch(alice, "rent november")))

	gotAlice, err := s.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, gotAlice, 1)
	assert.Equal(t, "rent november", gotAlice[0].Description)

	gotBob, err := s.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, gotBob, 2)
}

func TestStore_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	userID := uuid.New()

	require.NoError(t, s.ReplaceForUser(ctx, userID, batch(userID, "a", "b")))
	require.NoError(t, s.DeleteByUser(ctx, userID))

	got, err := s.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ListUnknownUser(t *testing.T) {
	s := store.New()

	got, err := s.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}
