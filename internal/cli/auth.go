package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. The issued
// token is persisted by the API client, so the user is signed in afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	var res *models.AuthResponse
	err = a.track(func() error {
		var rerr error
		res, rerr = a.api.Register(ctx, name, email, string(password))
		return rerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.sessionStarted(ctx, &res.User)
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", res.User.Name)
	return nil
}

// Login prompts for credentials and authenticates against the backend. On
// success the user's most recent conversation is reopened.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	var res *models.AuthResponse
	err = a.track(func() error {
		var lerr error
		res, lerr = a.api.Login(ctx, email, string(password))
		return lerr
	})
	if err != nil {
		a.report(ctx, err)
		return err
	}

	a.sessionStarted(ctx, &res.User)
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Name)
	return nil
}

// sessionStarted records the signed-in user and reopens their most recent
// conversation.
func (a *App) sessionStarted(ctx context.Context, user *models.User) {
	a.user = user
	if last := a.cache.LastConversation(ctx, user.ID); last != "" {
		a.cache.SetCurrentConversation(ctx, last)
	}
}

// Logout drops the stored auth pair and closes the open conversation.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.report(ctx, err)
		return err
	}

	a.user = nil
	a.cache.SetCurrentConversation(ctx, "")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the signed-in identity and whether the backend still accepts
// the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", a.user.Name, a.user.Email, a.user.ID)

	ver, err := a.api.Verify(ctx)
	if err != nil {
		a.report(ctx, err)
		return err
	}
	if ver.Valid {
		fmt.Fprintln(a.out, "Token: accepted by the backend")
	} else {
		fmt.Fprintln(a.out, "Token: rejected, please login again")
	}
	return nil
}
