package cli

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/duckycart/companion/internal/client/api"
	"github.com/duckycart/companion/internal/client/auth"
	"github.com/duckycart/companion/internal/client/config"
	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/client/nav"
	"github.com/duckycart/companion/internal/client/repositories/secrets"
	"github.com/duckycart/companion/internal/client/services"
	"github.com/duckycart/companion/internal/client/session"
	"github.com/duckycart/companion/internal/cryptox"
	"github.com/duckycart/companion/internal/logging"

	_ "modernc.org/sqlite"
)

// authManager is the slice of auth.Manager the shell needs. Declared here so
// tests can substitute a fake.
type authManager interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Logout(ctx context.Context)
	IsLoggedIn() bool
	User() *models.User
	Token() string
	Snapshot() auth.State
}

// App wires the client layers together and carries the REPL state: the
// current screen and the input reader.
type App struct {
	config     *config.Config
	auth       authManager
	checklists services.ChecklistService
	carts      services.CartSessionService
	log        logging.Logger

	mu     sync.Mutex
	screen nav.Screen

	reader *bufio.Reader
}

// NewApp opens the local vault, derives the sealing key, and builds the
// remote client and services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := secrets.OpenDatabase(ctx, c.VaultPath)
	if err != nil {
		log.Error(ctx, "failed to open vault", "path", c.VaultPath, "err", err)
		return nil, err
	}

	secret, salt, err := cryptox.LoadOrCreateDeviceKey(c.VaultPath + ".key")
	if err != nil {
		return nil, err
	}
	vaultKey := cryptox.DeriveVaultKey(secret, salt)

	store := secrets.NewSQLiteRepository(db, vaultKey)
	cache := session.NewCache(store)

	apiClient := api.New(c.ServerAddr, cache, log, c.HTTPTimeout)

	return &App{
		config:     c,
		auth:       auth.NewManager(apiClient, cache, log),
		checklists: services.NewChecklistService(apiClient, log),
		carts:      services.NewCartSessionService(apiClient, cache, log),
		log:        log,
		screen:     nav.ScreenSignIn,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the cached session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.auth.Restore(ctx)
	if a.auth.IsLoggedIn() {
		if err := a.checklists.Refresh(ctx); err != nil {
			a.log.Warn(ctx, "initial checklist refresh failed", "err", err)
		}
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool { return a.auth.IsLoggedIn() }

func (a *App) snapshot() nav.State {
	s := a.auth.Snapshot()
	return nav.State{IsLoggedIn: s.IsLoggedIn, IsLoading: s.IsLoading}
}

func (a *App) screenNow() nav.Screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen
}

func (a *App) setScreen(s nav.Screen) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen = s
}
