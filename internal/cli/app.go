package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskpilot/internal/api"
	"github.com/dmitrijs2005/taskpilot/internal/apierr"
	"github.com/dmitrijs2005/taskpilot/internal/authstore"
	"github.com/dmitrijs2005/taskpilot/internal/config"
	"github.com/dmitrijs2005/taskpilot/internal/convcache"
	"github.com/dmitrijs2005/taskpilot/internal/logging"
	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/netx"
	"github.com/dmitrijs2005/taskpilot/internal/state"
	"github.com/dmitrijs2005/taskpilot/internal/storage"
)

// App wires the API client, local storage and session state behind the REPL
// commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      *api.Client
	auth     *authstore.Store
	cache    *convcache.Cache
	loading  *state.LoadingTracker
	watcher  *state.ConnectionWatcher
	boundary *apierr.Boundary

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	user *models.User
}

// NewApp builds a ready-to-run App from cfg. A failure to open local storage
// is not fatal: the app degrades to a disabled store and keeps working
// against the backend only.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	baseURL, err := netx.NormalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	var (
		st storage.Store
		db *sql.DB
	)
	if dbPath, derr := cfg.ResolveDatabasePath(); derr != nil {
		log.Warn(ctx, "cannot resolve database path, running without persistence", "error", derr)
	} else {
		var sq *storage.SQLiteStore
		if sq, db, derr = storage.InitStore(ctx, dbPath); derr != nil {
			log.Warn(ctx, "local storage unavailable, running without persistence", "error", derr)
		} else {
			st = sq
		}
	}
	if st == nil {
		st = storage.Disabled()
	}

	auth := authstore.New(st, log)
	apiClient := api.New(baseURL, auth, log)

	a := &App{
		config:  cfg,
		log:     log,
		api:     apiClient,
		auth:    auth,
		cache:   convcache.New(st, log),
		loading: &state.LoadingTracker{},
		watcher: state.NewConnectionWatcher(apiClient, log),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.boundary = &apierr.Boundary{OnError: func(e *apierr.Error) {
		log.Debug(context.Background(), "operation failed", "kind", string(e.Kind), "message", e.Message)
	}}
	return a, nil
}

// Run restores the previous session, starts the connectivity watcher and
// hands control to the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "TaskPilot CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	go a.watcher.Watch(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// getStatus renders the prompt decoration: the signed-in user plus the last
// known connectivity, e.g. "(alice online)".
func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Name + " "
	}
	if st := a.watcher.Status(); st != state.StatusUnknown {
		s += string(st)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// restoreSession promotes a stored auth pair into a live session. When the
// backend cannot be reached the stored identity is kept so cached data stays
// usable offline; a rejected token drops the session.
func (a *App) restoreSession(ctx context.Context) {
	user := a.auth.StoredUser(ctx)
	if user == nil {
		return
	}
	a.user = user

	ver, err := a.api.Verify(ctx)
	switch {
	case err == nil && ver.Valid:
		if ver.User.ID != "" {
			a.user = &ver.User
		}
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.user.Name)
	case err == nil:
		a.user = nil
		_ = a.api.Logout(ctx)
		fmt.Fprintln(a.out, "Stored session expired, please login again.")
	case errors.Is(err, api.ErrUnauthorized):
		// The client already dropped the stored pair.
		a.user = nil
		fmt.Fprintln(a.out, "Stored session expired, please login again.")
	default:
		a.log.Warn(ctx, "could not verify stored session", "error", err)
		fmt.Fprintf(a.out, "Backend unreachable, continuing offline as %s.\n", a.user.Name)
	}
}

// report prints err for the user. A rejected token additionally drops the
// session, the terminal analogue of being sent back to the login screen.
func (a *App) report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, api.ErrUnauthorized) {
		a.user = nil
		fmt.Fprintln(a.out, "Session expired, please login again.")
		return
	}

	a.log.Debug(ctx, "command failed", "error", err)
	fmt.Fprintln(a.out, apierr.FormatMessage(err))
}

// track runs fn with the loading counter held so the status surface can show
// in-flight work.
func (a *App) track(fn func() error) error {
	a.loading.Begin()
	defer a.loading.End()
	return fn()
}
