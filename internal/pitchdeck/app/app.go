package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/http"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/oauth"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store/drivers/sqlite"
	"github.com/aussiebroadwan/pitchdeck/pkg/cryptox"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/otelx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the pitchdeck service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        store.Store
	telemetry *otelx.Provider // nil when metrics are disabled

	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier

	tokenService        *service.TokenService
	authService         *service.AuthService
	pitchService        *service.PitchService
	interestService     *service.InterestService
	oauthService        *service.OAuthService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "pitchdeck",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		app.closeAll()
		return nil, err
	}

	if cfg.SeedFile != "" {
		if err := app.seed(context.Background()); err != nil {
			app.closeAll()
			return nil, err
		}
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until ctx is cancelled, a shutdown
// signal arrives or the server fails.
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.housekeepingService.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("pitchdeck starting", "port", app.cfg.Port, "version", BuildVersion)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			app.logger.Info("shutdown requested")
		}
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pitchdeck...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if app.telemetry != nil {
		if err := app.telemetry.Shutdown(ctx); err != nil {
			app.logger.Error("error shutting down metrics", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("pitchdeck stopped")
	return nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) closeAll() {
	if app.telemetry != nil {
		_ = app.telemetry.Shutdown(context.Background())
	}
	_ = app.db.Close()
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initServices builds the token machinery, metrics and business services.
func (app *Application) initServices() error {
	signer, err := jwtx.NewSignerHS256([]byte(app.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(app.cfg.JWTSecret), app.cfg.JWTIssuer, jwtx.DefaultLeeway)

	hasher, err := cryptox.NewBcryptHasher(app.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	var metrics *service.Metrics
	if app.cfg.MetricsEnabled {
		tel, err := otelx.New()
		if err != nil {
			return err
		}
		app.telemetry = tel

		metrics, err = service.NewMetrics(tel.Meter("github.com/aussiebroadwan/pitchdeck/service"))
		if err != nil {
			return fmt.Errorf("failed to create service metrics: %w", err)
		}
	}

	app.tokenService = &service.TokenService{
		Signer:   app.signer,
		Verifier: app.verifier,
		Store:    app.db,
		Issuer:   app.cfg.JWTIssuer,
		TTL:      app.cfg.JWTExpiresIn,
	}
	app.authService = &service.AuthService{
		Store:   app.db,
		Hasher:  hasher,
		Tokens:  app.tokenService,
		Metrics: metrics,
	}
	app.pitchService = &service.PitchService{Store: app.db, Metrics: metrics}
	app.interestService = &service.InterestService{Store: app.db, Metrics: metrics}

	app.oauthService = &service.OAuthService{
		Store:   app.db,
		Tokens:  app.tokenService,
		Metrics: metrics,
	}
	google := oauth.GoogleConfig{
		ClientID:     app.cfg.GoogleClientID,
		ClientSecret: app.cfg.GoogleClientSecret,
		RedirectURL:  app.cfg.GoogleCallbackURL,
	}
	if google.Configured() {
		provider, err := oauth.NewGoogle(google)
		if err != nil {
			return fmt.Errorf("failed to initialize google sign-in: %w", err)
		}
		app.oauthService.Provider = provider
		app.logger.Info("google sign-in enabled", "callback", app.cfg.GoogleCallbackURL)
	} else {
		app.logger.Info("google sign-in disabled: GOOGLE_CLIENT_ID not set")
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	return nil
}

// seed applies the YAML fixture named by SEED_FILE.
func (app *Application) seed(ctx context.Context) error {
	fixture, err := service.LoadSeedFile(app.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	seeder := &service.Seeder{
		Store:   app.db,
		Auth:    app.authService,
		Pitches: app.pitchService,
	}

	start := time.Now()
	report, err := seeder.Apply(slogx.WithContext(ctx, app.logger), fixture)
	if err != nil {
		return fmt.Errorf("failed to apply seed file: %w", err)
	}

	app.logger.Info("seed applied",
		"file", app.cfg.SeedFile,
		"users_created", report.UsersCreated,
		"users_skipped", report.UsersSkipped,
		"pitches_created", report.PitchesCreated,
		"pitches_skipped", report.PitchesSkipped,
		"took", time.Since(start),
	)
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	httpx.TrustedProxies = app.cfg.TrustedProxies

	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		slogx.IsDevEnv(app.cfg.Env),
	)

	router.FrontendURL = app.cfg.FrontendURL
	router.TokenService = app.tokenService
	router.AuthService = app.authService
	router.PitchService = app.pitchService
	router.InterestService = app.interestService
	router.OAuthService = app.oauthService

	if app.telemetry != nil {
		httpMetrics, err := otelx.NewHTTPMetrics(app.telemetry.Meter("github.com/aussiebroadwan/pitchdeck/http"))
		if err != nil {
			app.logger.Warn("http metrics disabled", "error", err)
		} else {
			router.HTTPMetrics = httpMetrics
		}
		router.MetricsHandler = app.telemetry.Handler()
	}

	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
