package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/metinatakli/movie-catalog/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "movie-catalog-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	apiDoc    *openapi3.T

	movieRepo domain.MovieRepository
}

type Config struct {
	Port             int
	Env              string
	BaseURL          string
	OtelCollectorUrl string
	DB               DBConfig
	Limiter          LimiterConfig
}

type DBConfig struct {
	DSN            string
	MaxOpenConns   int
	MaxIdleTime    time.Duration
	Migrate        bool
	MigrationsPath string
}

type LimiterConfig struct {
	Enabled bool
	RPS     int
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	apiDoc *openapi3.T,
	movieRepo domain.MovieRepository,
) *Application {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		apiDoc:    apiDoc,
		movieRepo: movieRepo,
	}
}

func Run() error {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.BaseURL, "base-url", envString("BASE_URL", ""), "Public base URL used in pagination links (default http://localhost:<port>)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.Migrate, "db-migrate", false, "Apply database migrations before starting")
	flag.StringVar(&cfg.DB.MigrationsPath, "db-migrations", "file://migrations", "Migration source URL")

	flag.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Enable per-IP rate limiter")
	flag.IntVar(&cfg.Limiter.RPS, "limiter-rps", 20, "Rate limiter maximum requests per second per IP")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := NewApp(cfg, logger, appvalidator.NewValidator(), nil, nil)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	if cfg.DB.Migrate {
		err = RunMigrations(cfg.DB.DSN, cfg.DB.MigrationsPath)
		if err != nil {
			return err
		}

		app.logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	app.logger.Info("database connection pool established")

	apiDoc, err := api.GetSwagger(context.Background())
	if err != nil {
		return err
	}

	app.apiDoc = apiDoc
	app.movieRepo = repository.NewPostgresMovieRepository(db)

	return app.run()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	if app.config.Limiter.Enabled {
		r.Use(httprate.Limit(
			app.config.Limiter.RPS,
			time.Second,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(app.rateLimitExceededResponse),
		))
	}

	r.Get("/healthcheck", app.GetHealth)
	r.Get("/openapi.json", app.GetOpenAPISpec)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.With(app.chain(app.validateKeysType, app.ensureNameIsUnused)).
			Post("/", app.CreateMovie)

		r.Route("/{id}", func(r chi.Router) {
			r.With(app.chain(app.validateKeysType, app.ensureMovieExists, app.ensureNameIsUnused)).
				Patch("/", app.UpdateMovie)
			r.With(app.chain(app.ensureMovieExists)).
				Delete("/", app.DeleteMovie)
		})
	})

	return r
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
