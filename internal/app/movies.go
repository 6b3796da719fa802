package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/domain"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/oapi-codegen/runtime"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 5
	DefaultOrder    = "asc"
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	input, err := app.contextGetPayload(r).movieInput()
	if err != nil {
		logger.Warn("movie creation rejected: undecodable field", "error", err)
		app.errorResponse(w, r, http.StatusBadRequest, ErrRequiredKeys)
		return
	}

	movie, err := app.movieRepo.Create(r.Context(), input)
	if err != nil {
		logger.Warn("movie creation failed", "error", err)
		app.errorResponse(w, r, http.StatusBadRequest, ErrRequiredKeys)
		return
	}

	logger.Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, []api.Movie{toApiMovie(movie)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params := app.readMoviesParams(r)
	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if metadata == nil {
		metadata = domain.NewMetadata(len(movies), filters.Page, filters.PageSize)
	}

	resp := api.MovieListResponse{
		Count: metadata.Count,
		Data:  toApiMovies(movies),
	}

	if metadata.HasPrevious() {
		resp.PreviousPage = app.pageLink(filters.Page-1, filters.PageSize, filters.Sort, filters.Order)
	}

	if metadata.HasNext() {
		resp.NextPage = app.pageLink(filters.Page+1, filters.PageSize, filters.Sort, filters.Order)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	movie := app.contextGetMovie(r)
	payload := app.contextGetPayload(r)

	if len(payload) == 0 {
		app.errorResponse(w, r, http.StatusBadRequest, ErrBodyRequired)
		return
	}

	changes, err := payload.assignments()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updated, err := app.movieRepo.Update(r.Context(), movie.ID, changes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie disappeared before update", "movie_id", movie.ID)
			app.movieNotFoundResponse(w, r)
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.editConflictResponse(w, r)
		case errors.Is(err, domain.ErrInvalidData):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie updated", "movie_id", updated.ID)

	err = app.writeJSON(w, http.StatusOK, toApiMovie(updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	movie := app.contextGetMovie(r)

	err := app.movieRepo.Delete(r.Context(), movie.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.movieNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie deleted", "movie_id", movie.ID)

	w.WriteHeader(http.StatusNoContent)
}

// readMoviesParams binds the list query parameters. Values that are
// malformed or out of range are dropped so that their defaults apply.
func (app *Application) readMoviesParams(r *http.Request) api.GetMoviesParams {
	logger := app.contextGetLogger(r)
	query := r.URL.Query()

	var params api.GetMoviesParams

	bind := func(name string, dest any) bool {
		err := runtime.BindQueryParameter("form", true, false, name, query, dest)
		if err != nil {
			logger.Debug("ignoring list parameter", "param", name, "error", err)
			return false
		}

		return true
	}

	if !bind("page", &params.Page) {
		params.Page = nil
	}
	if !bind("perPage", &params.PerPage) {
		params.PerPage = nil
	}
	if !bind("sort", &params.Sort) {
		params.Sort = nil
	}
	if !bind("order", &params.Order) {
		params.Order = nil
	}

	if params.Order != nil {
		order := strings.ToLower(*params.Order)
		params.Order = &order
	}

	err := app.validator.Struct(params)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return params
	}

	for _, fe := range verrs {
		logger.Debug("ignoring list parameter", "param", fe.Field(), "issue", appvalidator.ValidationMessage(fe))

		switch fe.StructField() {
		case "Page":
			params.Page = nil
		case "PerPage":
			params.PerPage = nil
		case "Sort":
			params.Sort = nil
		case "Order":
			params.Order = nil
		}
	}

	return params
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Pagination: domain.Pagination{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
		},
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PerPage != nil {
		filters.PageSize = *params.PerPage
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort

		filters.Order = DefaultOrder
		if params.Order != nil {
			filters.Order = *params.Order
		}
	}

	return filters
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	result := make([]api.Movie, len(movies))

	for i, movie := range movies {
		result[i] = toApiMovie(movie)
	}

	return result
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	return api.Movie{
		Id:          movie.ID,
		Name:        movie.Name,
		Description: movie.Description,
		Duration:    movie.Duration,
		Price:       movie.Price,
	}
}
