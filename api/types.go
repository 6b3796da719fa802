// Package api holds the HTTP contract of the service: the request/response
// types and the embedded OpenAPI document they are described by.
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Movie defines model for Movie.
type Movie struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    decimal.Decimal `json:"duration"`
	Price       decimal.Decimal `json:"price"`
}

// MarshalJSON writes duration and price as JSON numbers. decimal quotes them
// by default.
func (m Movie) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id          int         `json:"id"`
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Duration    json.Number `json:"duration"`
		Price       json.Number `json:"price"`
	}{
		Id:          m.Id,
		Name:        m.Name,
		Description: m.Description,
		Duration:    json.Number(m.Duration.String()),
		Price:       json.Number(m.Price.String()),
	})
}

// MovieListResponse defines model for MovieListResponse.
type MovieListResponse struct {
	PreviousPage *string `json:"previousPage"`
	NextPage     *string `json:"nextPage"`
	Count        int     `json:"count"`
	Data         []Movie `json:"data"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemInfo defines model for SystemInfo.
type SystemInfo struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// HealthcheckResponse defines model for HealthcheckResponse.
type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// GetMoviesParams defines parameters for GetMovies. Values failing the
// validate tags are replaced by their defaults rather than rejected.
//
// Page is capped at math.MaxInt64/5 so that (page-1)*perPage and page+1
// stay within int.
type GetMoviesParams struct {
	Page    *int    `form:"page,omitempty" json:"page,omitempty" validate:"omitnil,min=1,max=1844674407370955161"`
	PerPage *int    `form:"perPage,omitempty" json:"perPage,omitempty" validate:"omitnil,min=1,max=5"`
	Sort    *string `form:"sort,omitempty" json:"sort,omitempty" validate:"omitnil,oneof=price duration"`
	Order   *string `form:"order,omitempty" json:"order,omitempty" validate:"omitnil,oneof=asc desc"`
}
