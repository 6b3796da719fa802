package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

type contextKey string

const (
	movieContextKey   = contextKey("movie")
	payloadContextKey = contextKey("payload")
)

func (c contextKey) String() string {
	return string(c)
}

func (app *Application) contextSetMovie(r *http.Request, movie *domain.Movie) *http.Request {
	ctx := context.WithValue(r.Context(), movieContextKey, movie)
	return r.WithContext(ctx)
}

func (app *Application) contextGetMovie(r *http.Request) *domain.Movie {
	movie, ok := r.Context().Value(movieContextKey).(*domain.Movie)
	if !ok {
		panic("missing movie from context")
	}

	return movie
}

func (app *Application) contextSetPayload(r *http.Request, payload moviePayload) *http.Request {
	ctx := context.WithValue(r.Context(), payloadContextKey, payload)
	return r.WithContext(ctx)
}

func (app *Application) contextGetPayload(r *http.Request) moviePayload {
	payload, ok := r.Context().Value(payloadContextKey).(moviePayload)
	if !ok {
		panic("missing payload from context")
	}

	return payload
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"uri", r.URL.RequestURI(),
	)
}
