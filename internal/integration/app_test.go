package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/app"
	"github.com/metinatakli/movie-catalog/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	apiDoc, err := api.GetSwagger(context.Background())
	if err != nil {
		return nil, err
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		apiDoc,
		movieRepo,
	)

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
