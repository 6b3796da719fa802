package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type testMovie struct {
	Name        string
	Description string
	Duration    string
	Price       string
}

func defaultTestMovie() testMovie {
	return testMovie{
		Name:        TestMovieName,
		Description: TestMovieDescription,
		Duration:    "155",
		Price:       TestMoviePrice,
	}
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse decodes JSON numbers as float64, so expected bodies may
// write 12.5 where the service answers 12.50.
func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE TABLE movies RESTART IDENTITY")
	require.NoError(t, err)
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, movie testMovie) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (name, description, duration, price)
		VALUES ($1, $2, $3::numeric, $4::numeric)
		RETURNING id`,
		movie.Name, movie.Description, movie.Duration, movie.Price,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func countMovies(t testing.TB, db *pgxpool.Pool) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM movies").Scan(&count)
	require.NoError(t, err)

	return count
}
