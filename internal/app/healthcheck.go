package app

import (
	"net/http"

	"github.com/metinatakli/movie-catalog/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.Env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetOpenAPISpec serves the API contract the service was started with.
func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	doc := app.apiDoc
	if doc == nil {
		var err error

		doc, err = api.GetSwagger(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err := app.writeJSON(w, http.StatusOK, doc, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
