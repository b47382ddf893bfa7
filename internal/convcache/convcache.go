package convcache

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/dmitrijs2005/taskpilot/internal/logging"
	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/storage"
)

// Storage keys. The full list lives under one key so a single read serves
// the conversation picker; pointer keys track selection per session and per
// user.
const (
	listKey       = "conversations"
	currentKey    = "current_conversation"
	lastKeyPrefix = "last_conversation:"
)

// Cache keeps conversation metadata in local storage so the picker and the
// chat prompt keep working while the backend is unreachable. It is a cache,
// not a source of truth: every operation swallows storage and decoding
// failures, logs them, and degrades to empty defaults.
type Cache struct {
	storage storage.Store
	log     logging.Logger
	now     func() time.Time
}

func New(st storage.Store, log logging.Logger) *Cache {
	return &Cache{storage: st, log: log, now: time.Now}
}

// UserConversations returns the cached conversations belonging to userID,
// most recently updated first.
func (c *Cache) UserConversations(ctx context.Context, userID string) []models.Conversation {
	var out []models.Conversation
	for _, conv := range c.load(ctx) {
		if conv.UserID == userID {
			out = append(out, conv)
		}
	}

	slices.SortStableFunc(out, func(a, b models.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// SaveConversation upserts conv in the cache. An existing entry keeps its
// CreatedAt; UpdatedAt is refreshed either way, so repeated saves of the
// same record are idempotent apart from that stamp.
func (c *Cache) SaveConversation(ctx context.Context, conv models.Conversation) {
	now := c.now()
	conv.UpdatedAt = now

	list := c.load(ctx)
	replaced := false
	for i, cur := range list {
		if cur.ID == conv.ID && cur.UserID == conv.UserID {
			conv.CreatedAt = cur.CreatedAt
			list[i] = conv
			replaced = true
			break
		}
	}
	if !replaced {
		if conv.CreatedAt.IsZero() {
			conv.CreatedAt = now
		}
		list = append(list, conv)
	}

	c.store(ctx, list)
}

// RemoveConversation drops the entry with id from userID's scope. The
// current pointer is cleared when it referenced the removed conversation.
func (c *Cache) RemoveConversation(ctx context.Context, id, userID string) {
	list := c.load(ctx)
	kept := list[:0]
	removed := false
	for _, conv := range list {
		if conv.ID == id && conv.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, conv)
	}
	if !removed {
		return
	}

	c.store(ctx, kept)
	if c.CurrentConversation(ctx) == id {
		c.SetCurrentConversation(ctx, "")
	}
	if c.LastConversation(ctx, userID) == id {
		c.SetLastConversation(ctx, userID, "")
	}
}

// ClearUserConversations drops every entry belonging to userID, leaving
// other users' entries in place. Pointer keys referencing the dropped
// entries are cleared as well.
func (c *Cache) ClearUserConversations(ctx context.Context, userID string) {
	list := c.load(ctx)
	kept := list[:0]
	current := c.CurrentConversation(ctx)
	currentDropped := false
	for _, conv := range list {
		if conv.UserID != userID {
			kept = append(kept, conv)
			continue
		}
		if conv.ID == current {
			currentDropped = true
		}
	}

	c.store(ctx, kept)
	if currentDropped {
		c.SetCurrentConversation(ctx, "")
	}
	c.SetLastConversation(ctx, userID, "")
}

// CurrentConversation returns the id of the conversation the session has
// open, or "" when none is selected.
func (c *Cache) CurrentConversation(ctx context.Context) string {
	raw, err := c.storage.Get(ctx, currentKey)
	if err != nil {
		c.log.Warn(ctx, "failed to read current conversation pointer", "error", err)
		return ""
	}
	return string(raw)
}

// SetCurrentConversation records the open conversation. An empty id clears
// the pointer.
func (c *Cache) SetCurrentConversation(ctx context.Context, id string) {
	var err error
	if id == "" {
		err = c.storage.Delete(ctx, currentKey)
	} else {
		err = c.storage.Set(ctx, currentKey, []byte(id))
	}
	if err != nil {
		c.log.Warn(ctx, "failed to write current conversation pointer", "error", err)
	}
}

// LastConversation returns the conversation userID most recently had open
// across sessions, or "" when unknown.
func (c *Cache) LastConversation(ctx context.Context, userID string) string {
	raw, err := c.storage.Get(ctx, lastKeyPrefix+userID)
	if err != nil {
		c.log.Warn(ctx, "failed to read last conversation pointer", "error", err)
		return ""
	}
	return string(raw)
}

// SetLastConversation records userID's most recent conversation. An empty
// id clears the pointer.
func (c *Cache) SetLastConversation(ctx context.Context, userID, id string) {
	key := lastKeyPrefix + userID
	var err error
	if id == "" {
		err = c.storage.Delete(ctx, key)
	} else {
		err = c.storage.Set(ctx, key, []byte(id))
	}
	if err != nil {
		c.log.Warn(ctx, "failed to write last conversation pointer", "error", err)
	}
}

func (c *Cache) load(ctx context.Context) []models.Conversation {
	raw, err := c.storage.Get(ctx, listKey)
	if err != nil {
		c.log.Warn(ctx, "failed to read conversation cache", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var list []models.Conversation
	if err := json.Unmarshal(raw, &list); err != nil {
		c.log.Warn(ctx, "conversation cache is corrupt, ignoring", "error", err)
		return nil
	}
	return list
}

func (c *Cache) store(ctx context.Context, list []models.Conversation) {
	raw, err := json.Marshal(list)
	if err != nil {
		c.log.Warn(ctx, "failed to encode conversation cache", "error", err)
		return
	}
	if err := c.storage.Set(ctx, listKey, raw); err != nil {
		c.log.Warn(ctx, "failed to write conversation cache", "error", err)
	}
}
