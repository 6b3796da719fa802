package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readIDParam binds the {id} path parameter. Only positive integers are ids.
func (app *Application) readIDParam(r *http.Request) (int, error) {
	var id int

	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, err
	}

	if id < 1 {
		return 0, fmt.Errorf("invalid id parameter: %d", id)
	}

	return id, nil
}

// pageLink renders a link to page of the current listing.
func (app *Application) pageLink(page, perPage int, sort, order string) *string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("perPage", strconv.Itoa(perPage))

	if sort != "" {
		values.Set("sort", sort)
		values.Set("order", order)
	}

	link := fmt.Sprintf("%s/movies?%s", app.config.BaseURL, values.Encode())

	return &link
}
