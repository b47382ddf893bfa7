package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskpilot/internal/models"
)

func TestConversations_NotLoggedIn(t *testing.T) {
	a, out := newOfflineApp(t)

	require.NoError(t, a.Conversations(context.Background(), nil))
	require.Contains(t, out.String(), "Please login first.")
}

func TestConversations_UnknownSubcommand(t *testing.T) {
	a, out := newOfflineApp(t)
	a.user = &models.User{ID: "u-1", Name: "Alice"}

	require.NoError(t, a.Conversations(context.Background(), []string{"archive"}))
	require.Contains(t, out.String(), "Usage: conversations")
}

func TestListConversations_SavesRemoteRecordsAndMarksCurrent(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/u-1/conversations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Conversation{
			{ID: "c-1", UserID: "u-1", Title: "First"},
			{ID: "c-2", UserID: "u-1", Title: "Second"},
		})
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()
	a.cache.SetCurrentConversation(ctx, "c-2")

	require.NoError(t, a.Conversations(ctx, []string{"list"}))

	assert.Contains(t, out.String(), "  c-1  First")
	assert.Contains(t, out.String(), "* c-2  Second")
	assert.Len(t, a.cache.UserConversations(ctx, "u-1"), 2, "remote records end up cached")
}

func TestListConversations_OfflineFallsBackToCache(t *testing.T) {
	a, out := newOfflineApp(t)
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	a.cache.SaveConversation(ctx, models.Conversation{ID: "c-1", UserID: "u-1", Title: "Week planning"})

	require.NoError(t, a.Conversations(ctx, nil))

	require.Contains(t, out.String(), "Backend unreachable, showing cached conversations.")
	require.Contains(t, out.String(), "c-1  Week planning")
}

func TestListConversations_Empty(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Conversation{})
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}

	require.NoError(t, a.Conversations(context.Background(), nil))
	require.Contains(t, out.String(), "No conversations yet. Type 'chat' to start one.")
}

func TestOpenConversation_SetsPointers(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/u-1/conversations/c-2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Conversation{ID: "c-2", UserID: "u-1", Title: "Second"})
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	require.NoError(t, a.Conversations(ctx, []string{"open", "c-2"}))

	require.Contains(t, out.String(), "Conversation c-2 is now current.")
	assert.Equal(t, "c-2", a.cache.CurrentConversation(ctx))
	assert.Equal(t, "c-2", a.cache.LastConversation(ctx, "u-1"))
}

func TestOpenConversation_NotFound(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"conversation not found"}`, http.StatusNotFound)
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	require.NoError(t, a.Conversations(ctx, []string{"open", "c-404"}))

	require.Contains(t, out.String(), "No such conversation.")
	assert.Empty(t, a.cache.CurrentConversation(ctx), "a missing thread must not become current")
}

func TestOpenConversation_OfflineTrustsCache(t *testing.T) {
	a, out := newOfflineApp(t)
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	require.NoError(t, a.Conversations(ctx, []string{"open", "c-9"}))

	require.Contains(t, out.String(), "Conversation c-9 is now current.")
	assert.Equal(t, "c-9", a.cache.CurrentConversation(ctx))
}

func TestNewConversation_BecomesCurrent(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req models.ConversationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Trip ideas", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Conversation{ID: "c-5", UserID: "u-1", Title: req.Title})
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	require.NoError(t, a.Conversations(ctx, []string{"new", "Trip", "ideas"}))

	require.Contains(t, out.String(), "Started conversation c-5.")
	assert.Equal(t, "c-5", a.cache.CurrentConversation(ctx))

	list := a.cache.UserConversations(ctx, "u-1")
	require.Len(t, list, 1)
	assert.Equal(t, "Trip ideas", list[0].Title)
}

func TestRenameConversation_UpdatesCache(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/u-1/conversations/c-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Conversation{ID: "c-1", UserID: "u-1", Title: "Renamed"})
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()
	a.cache.SaveConversation(ctx, models.Conversation{ID: "c-1", UserID: "u-1", Title: "Old"})

	require.NoError(t, a.Conversations(ctx, []string{"rename", "c-1", "Renamed"}))

	require.Contains(t, out.String(), `Renamed to "Renamed".`)
	list := a.cache.UserConversations(ctx, "u-1")
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Title)
}

func TestDeleteConversation_RemovesEverywhere(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()

	a.cache.SaveConversation(ctx, models.Conversation{ID: "c-1", UserID: "u-1", Title: "Doomed"})
	a.cache.SetCurrentConversation(ctx, "c-1")

	require.NoError(t, a.Conversations(ctx, []string{"delete", "c-1"}))

	require.Contains(t, out.String(), "Deleted.")
	assert.Empty(t, a.cache.UserConversations(ctx, "u-1"))
	assert.Empty(t, a.cache.CurrentConversation(ctx), "dangling pointer must be cleared")
}

func TestDeleteConversation_GoneRemotelyStillCleansCache(t *testing.T) {
	a, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"conversation not found"}`, http.StatusNotFound)
	}))
	a.user = &models.User{ID: "u-1", Name: "Alice"}
	ctx := context.Background()
	a.cache.SaveConversation(ctx, models.Conversation{ID: "c-1", UserID: "u-1", Title: "Stale"})

	require.NoError(t, a.Conversations(ctx, []string{"delete", "c-1"}))

	require.Contains(t, out.String(), "Deleted.")
	assert.Empty(t, a.cache.UserConversations(ctx, "u-1"))
}
