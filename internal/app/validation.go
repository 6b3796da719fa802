package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/middleware"
)

// validateKeysType decodes the body and checks the JSON type of every movie
// field it carries. The decoded payload is handed on through the context.
func (app *Application) validateKeysType(r *http.Request) (*http.Request, *middleware.Rejection) {
	payload, err := app.readPayload(r)
	if err != nil {
		app.contextGetLogger(r).Warn("rejected malformed body", "error", err)
		return nil, middleware.Reject(http.StatusBadRequest, ErrBodyNotObject)
	}

	if err := payload.typeError(); err != nil {
		return nil, middleware.Reject(http.StatusBadRequest, err.Error())
	}

	return app.contextSetPayload(r, payload), nil
}

// ensureMovieExists loads the movie named by the {id} path parameter.
func (app *Application) ensureMovieExists(r *http.Request) (*http.Request, *middleware.Rejection) {
	id, err := app.readIDParam(r)
	if err != nil {
		return nil, middleware.Reject(http.StatusBadRequest, ErrInvalidMovieID)
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, middleware.Reject(http.StatusNotFound, ErrMovieNotFound)
		}

		return nil, middleware.Fail(fmt.Errorf("looking up movie %d: %w", id, err))
	}

	return app.contextSetMovie(r, movie), nil
}

// ensureNameIsUnused rejects a payload whose name is already taken. It does
// not exempt the movie being updated, so renaming a movie to its own name is
// a conflict as well.
func (app *Application) ensureNameIsUnused(r *http.Request) (*http.Request, *middleware.Rejection) {
	name, ok := app.contextGetPayload(r).name()
	if !ok {
		return nil, nil
	}

	_, err := app.movieRepo.GetByName(r.Context(), name)
	switch {
	case err == nil:
		return nil, middleware.Reject(http.StatusConflict, ErrMovieExists)
	case errors.Is(err, domain.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, middleware.Fail(fmt.Errorf("looking up movie name: %w", err))
	}
}
