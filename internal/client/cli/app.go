package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"brewdesk/internal/client/api"
	"brewdesk/internal/client/config"
	"brewdesk/internal/client/onboarding"
	"brewdesk/internal/client/routing"
	"brewdesk/internal/client/session"
	"brewdesk/internal/client/storage"
	"brewdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the state models, the router, and the API client behind the
// interactive shell. One App per process; the models are plain objects
// passed by reference, not globals.
type App struct {
	config   *config.Config
	api      api.Client
	session  *session.Session
	progress *onboarding.Progress
	router   *routing.Router
	log      logging.Logger

	reader  *bufio.Reader
	out     io.Writer
	current routing.Route
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing state database: %w", err)
	}

	store := storage.NewStore(db, log)
	sess := session.New(ctx, store, log)
	progress := onboarding.New(ctx, db, store, log)
	router := routing.NewRouter(sess, progress, log)

	apiClient := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, sess.Token)

	return &App{
		config:   cfg,
		api:      apiClient,
		session:  sess,
		progress: progress,
		router:   router,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// navigateTo asks the router for the admissible destination and runs the
// screen it lands on. The guard may substitute a redirect target; the
// screen that actually runs is always one the guard allowed.
func (a *App) navigateTo(ctx context.Context, name string) error {
	route := a.router.Navigate(ctx, name)
	a.current = route
	return a.runScreen(ctx, route)
}

func (a *App) runScreen(ctx context.Context, route routing.Route) error {
	switch route.Name {
	case routing.RouteWelcome:
		return a.screenWelcome(ctx)
	case routing.RouteLogin:
		return a.screenLogin(ctx)
	case routing.RouteRegister:
		return a.screenRegister(ctx)
	case routing.RouteEmail:
		return a.screenEmail(ctx)
	case routing.RouteVerifyOTP:
		return a.screenVerifyOTP(ctx)
	case routing.RouteSetPassword:
		return a.screenSetPassword(ctx)
	case routing.RouteHome:
		return a.screenHome(ctx)
	case routing.RouteAbout:
		return a.screenAbout(ctx)
	case routing.RouteUsers:
		return a.screenUsers(ctx)
	case routing.RouteSettings:
		return a.screenSettings(ctx)
	case routing.RouteAllProducts:
		return a.screenAllProducts(ctx)
	case routing.RouteStockIn:
		return a.screenStockAdjust(ctx, 1)
	case routing.RouteStockOut:
		return a.screenStockAdjust(ctx, -1)
	case routing.RouteOrders:
		return a.screenOrders(ctx)
	default:
		fmt.Fprintln(a.out, "There is nothing here.")
		return nil
	}
}

// Logout wipes the session and lands back on the welcome screen. The
// backend call is best effort: a dead server must not trap the user in a
// logged-in shell.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "backend logout failed", "err", err)
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	// The store wipe already removed the persisted wizard slots; Reset
	// brings the in-memory progress back in line with them.
	if err := a.progress.Reset(ctx); err != nil {
		return err
	}
	return a.navigateTo(ctx, routing.RouteWelcome)
}
