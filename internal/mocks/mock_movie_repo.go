package mocks

import (
	"context"

	"github.com/metinatakli/movie-catalog/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc    func(ctx context.Context, input domain.MovieInput) (*domain.Movie, error)
	GetAllFunc    func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error)
	GetByIdFunc   func(ctx context.Context, id int) (*domain.Movie, error)
	GetByNameFunc func(ctx context.Context, name string) (*domain.Movie, error)
	UpdateFunc    func(ctx context.Context, id int, changes []domain.Assignment) (*domain.Movie, error)
	DeleteFunc    func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) Create(ctx context.Context, input domain.MovieInput) (*domain.Movie, error) {
	return m.CreateFunc(ctx, input)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetByName(ctx context.Context, name string) (*domain.Movie, error) {
	return m.GetByNameFunc(ctx, name)
}

func (m *MockMovieRepo) Update(ctx context.Context, id int, changes []domain.Assignment) (*domain.Movie, error) {
	return m.UpdateFunc(ctx, id, changes)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
