package cli

import (
	"context"
	"fmt"
)

// Status probes the backend once and prints a one-screen summary of the
// session.
func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "Backend:   %s (%s)\n", a.config.APIBaseURL, a.watcher.Check(ctx))

	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Signed in: %s <%s>\n", a.user.Name, a.user.Email)
	} else {
		fmt.Fprintln(a.out, "Signed in: no")
	}

	if cur := a.cache.CurrentConversation(ctx); cur != "" {
		fmt.Fprintf(a.out, "Chat:      conversation %s\n", cur)
	}
	if a.db == nil {
		fmt.Fprintln(a.out, "Storage:   disabled")
	}
	if a.loading.Active() {
		fmt.Fprintln(a.out, "Working:   requests in flight")
	}
	return nil
}
