package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/mocks"
	"github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/shopspring/decimal"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Port:    3000,
			Env:     "test",
			BaseURL: "http://localhost:3000",
		},
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		movieRepo: &mocks.MockMovieRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// executeRequest builds a request for url. A string body is sent verbatim,
// anything else is JSON encoded, and a nil body sends nothing.
func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func serve(app *Application, w *httptest.ResponseRecorder, r *http.Request) {
	app.Routes().ServeHTTP(w, r)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus < 400 {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}

// failOnCall returns a repository whose every method fails the test.
func failOnCall(t *testing.T) *mocks.MockMovieRepo {
	t.Helper()

	return &mocks.MockMovieRepo{
		CreateFunc: func(_ context.Context, _ domain.MovieInput) (*domain.Movie, error) {
			t.Error("unexpected store call: Create")
			return nil, nil
		},
		GetAllFunc: func(_ context.Context, _ domain.MovieFilters) ([]*domain.Movie, *domain.Metadata, error) {
			t.Error("unexpected store call: GetAll")
			return nil, nil, nil
		},
		GetByIdFunc: func(_ context.Context, _ int) (*domain.Movie, error) {
			t.Error("unexpected store call: GetById")
			return nil, domain.ErrRecordNotFound
		},
		GetByNameFunc: func(_ context.Context, _ string) (*domain.Movie, error) {
			t.Error("unexpected store call: GetByName")
			return nil, domain.ErrRecordNotFound
		},
		UpdateFunc: func(_ context.Context, _ int, _ []domain.Assignment) (*domain.Movie, error) {
			t.Error("unexpected store call: Update")
			return nil, nil
		},
		DeleteFunc: func(_ context.Context, _ int) error {
			t.Error("unexpected store call: Delete")
			return nil
		},
	}
}

func testMovie(id int, name string) *domain.Movie {
	return &domain.Movie{
		ID:          id,
		Name:        name,
		Description: "Description of " + name,
		Duration:    decimal.NewFromInt(155),
		Price:       decimal.RequireFromString("12.5"),
	}
}

func ptr[T any](v T) *T {
	return &v
}
