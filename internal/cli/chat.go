package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskpilot/internal/apierr"
	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// Chat reads one message and sends it within the current conversation. The
// reply opens or continues a conversation; pointer keys and the metadata
// cache are updated so the thread survives restarts.
func (a *App) Chat(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	message, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	req := models.ChatRequest{
		Message:        message,
		ConversationID: a.cache.CurrentConversation(ctx),
		UserID:         a.user.ID,
	}

	a.loading.Begin()
	res := apierr.Run(ctx, a.boundary, func(ctx context.Context) (*models.ChatResponse, error) {
		return a.api.SendMessage(ctx, req)
	})
	a.loading.End()

	if !res.OK {
		a.report(ctx, res.Err)
		return res.Err
	}

	reply := res.Data
	fmt.Fprintln(a.out, reply.Reply)

	a.cache.SetCurrentConversation(ctx, reply.ConversationID)
	a.cache.SetLastConversation(ctx, a.user.ID, reply.ConversationID)
	a.rememberExchange(ctx, reply.ConversationID, message)
	return nil
}

// rememberExchange upserts the conversation's cache entry after a sent
// message, deriving a title for threads the cache has not seen yet.
func (a *App) rememberExchange(ctx context.Context, conversationID, message string) {
	meta := models.Conversation{
		ID:          conversationID,
		UserID:      a.user.ID,
		LastMessage: message,
	}
	for _, cv := range a.cache.UserConversations(ctx, a.user.ID) {
		if cv.ID == conversationID {
			meta.Title = cv.Title
			meta.CreatedAt = cv.CreatedAt
			break
		}
	}
	if meta.Title == "" {
		meta.Title = titleFromMessage(message)
	}
	a.cache.SaveConversation(ctx, meta)
}

// titleFromMessage derives a short conversation title from its first message.
func titleFromMessage(msg string) string {
	const max = 40
	r := []rune(strings.TrimSpace(msg))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-3]) + "..."
}
