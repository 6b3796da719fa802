package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/query"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, input domain.MovieInput) (*domain.Movie, error) {
	q := query.InsertMovie(input)

	movie, err := scanMovie(p.db.QueryRow(ctx, q.Text, q.Args...))
	if err != nil {
		return nil, translateError(err)
	}

	return movie, nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	q := query.ListMovies(filters)

	rows, err := p.db.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(len(movies), filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	q := query.MovieByID(id)

	movie, err := scanMovie(p.db.QueryRow(ctx, q.Text, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) GetByName(ctx context.Context, name string) (*domain.Movie, error) {
	q := query.MovieByName(name)

	movie, err := scanMovie(p.db.QueryRow(ctx, q.Text, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, id int, changes []domain.Assignment) (*domain.Movie, error) {
	q, err := query.UpdateMovie(id, changes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidData, err)
	}

	movie, err := scanMovie(p.db.QueryRow(ctx, q.Text, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, translateError(err)
	}

	return movie, nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	q := query.DeleteMovie(id)

	tag, err := p.db.Exec(ctx, q.Text, q.Args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Name,
		&movie.Description,
		&movie.Duration,
		&movie.Price,
	)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// translateError maps constraint and data errors raised by Postgres to domain
// errors, keeping the server's message. Anything else is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return domain.ErrMovieAlreadyExists
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code), pgerrcode.IsDataException(pgErr.Code):
		return fmt.Errorf("%w: %s", domain.ErrInvalidData, pgErr.Message)
	}

	return err
}
