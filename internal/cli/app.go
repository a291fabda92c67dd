package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hackorsnooze/snooze/internal/api"
	"github.com/hackorsnooze/snooze/internal/config"
	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
	"github.com/hackorsnooze/snooze/internal/services"
	"github.com/hackorsnooze/snooze/internal/storage"

	_ "modernc.org/sqlite"
)

// App holds the session and display state of one CLI run: the current user,
// the loaded story list, and the slice of stories as last rendered (which
// is what numeric command arguments refer to).
type App struct {
	config  *config.Config
	auth    services.AuthService
	stories services.StoryService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	user *models.User
	list *models.StoryList
	view []models.Story
}

// NewApp wires the App: session database, API client, and services.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewRESTClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	store := storage.NewSQLiteStore(db)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(apiClient, store, logger),
		stories: services.NewStoryService(apiClient, logger),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores a stored session if one exists, loads and renders the story
// list, and hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Hack or Snooze (type 'help' for commands)")

	if user, _ := a.auth.Restore(ctx); user != nil {
		a.user = user
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	}

	if err := a.Reload(ctx); err != nil {
		fmt.Fprintln(a.out, "Stories failed to load; use 'reload' to retry.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status is shown in the prompt: the username when logged in, nothing
// otherwise.
func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// fail prints a visible error line for the user; unhandled failures must
// never disappear silently.
func (a *App) fail(ctx context.Context, what string, err error) error {
	a.logger.Error(ctx, what, "error", err.Error())
	fmt.Fprintf(a.out, "%s: %v\n", what, err)
	return err
}
