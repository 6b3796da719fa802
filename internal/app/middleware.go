package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/movie-catalog/internal/middleware"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// chain runs the given validation steps before the route handler.
func (app *Application) chain(steps ...middleware.Step) func(http.Handler) http.Handler {
	return middleware.Chain(app.rejectResponse, steps...)
}

func (app *Application) rejectResponse(w http.ResponseWriter, r *http.Request, rej *middleware.Rejection) {
	if rej.Status >= http.StatusInternalServerError {
		err := rej.Err
		if err == nil {
			err = fmt.Errorf("request rejected with status %d", rej.Status)
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	app.errorResponse(w, r, rej.Status, rej.Message)
}
