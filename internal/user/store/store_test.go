package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/user"
	"github.com/MrJamesThe3rd/khata/internal/user/store"
)

func TestStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	u := &user.User{ID: uuid.New(), Email: "john@example.com", Name: "John"}
	require.NoError(t, s.Create(ctx, u))

	byEmail, err := s.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, byEmail)

	byID, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, byID)
}

func TestStore_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	require.NoError(t, s.Create(ctx, &user.User{ID: uuid.New(), Email: "john@example.com"}))

	err := s.Create(ctx, &user.User{ID: uuid.New(), Email: "john@example.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	_, err := s.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = s.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}
