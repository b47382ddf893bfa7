package authstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskpilot/internal/logging"
	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/storage"
)

func setupStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return New(mem, logging.Discard()), mem
}

func TestStoreAuth_PersistsTokenAndUser(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	user := &models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, s.StoreAuth(ctx, "tok-123", user))

	assert.Equal(t, "tok-123", s.Token(ctx))
	got := s.StoredUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, *user, *got)
	assert.True(t, s.IsAuthenticated(ctx))
}

func TestStoreAuth_LastWriteWins(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreAuth(ctx, "first", &models.User{ID: "u-1"}))
	require.NoError(t, s.StoreAuth(ctx, "second", &models.User{ID: "u-2"}))

	assert.Equal(t, "second", s.Token(ctx))
	assert.Equal(t, "u-2", s.StoredUser(ctx).ID)
}

func TestToken_AbsentReturnsEmpty(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	assert.Equal(t, "", s.Token(ctx))
	assert.Nil(t, s.StoredUser(ctx))
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestStoredUser_CorruptRecordTreatedAsAbsence(t *testing.T) {
	s, mem := setupStore(t)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "auth_user", []byte("{not json")))

	assert.Nil(t, s.StoredUser(ctx), "corrupt JSON must read as absence, not fail")
}

func TestClearAuth_RemovesBothKeys(t *testing.T) {
	s, mem := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreAuth(ctx, "tok", &models.User{ID: "u-1"}))
	require.NoError(t, s.ClearAuth(ctx))

	assert.Equal(t, "", s.Token(ctx))
	assert.Nil(t, s.StoredUser(ctx))
	assert.False(t, s.IsAuthenticated(ctx))

	left, err := mem.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestStore_WorksOnDisabledStorage(t *testing.T) {
	s := New(storage.Disabled(), logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.StoreAuth(ctx, "tok", &models.User{ID: "u-1"}))
	assert.Equal(t, "", s.Token(ctx), "disabled storage reads as absence")
	assert.False(t, s.IsAuthenticated(ctx))
	require.NoError(t, s.ClearAuth(ctx))
}

// fallbackOnly hides the batch upgrade so the sequential path is exercised.
type fallbackOnly struct{ storage.Store }

func TestStoreAuth_SequentialFallbackWithoutBatchWriter(t *testing.T) {
	mem := storage.NewMemoryStore()
	s := New(fallbackOnly{mem}, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.StoreAuth(ctx, "tok", &models.User{ID: "u-1"}))
	assert.Equal(t, "tok", s.Token(ctx))
	assert.Equal(t, "u-1", s.StoredUser(ctx).ID)
}
