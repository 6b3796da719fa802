package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Movie column names, in table order.
const (
	MovieColumnID          = "id"
	MovieColumnName        = "name"
	MovieColumnDescription = "description"
	MovieColumnDuration    = "duration"
	MovieColumnPrice       = "price"
)

// MovieFields lists the client-writable columns in the order assignments are
// rendered.
var MovieFields = []string{
	MovieColumnName,
	MovieColumnDescription,
	MovieColumnDuration,
	MovieColumnPrice,
}

type Movie struct {
	ID          int
	Name        string
	Description string
	Duration    decimal.Decimal
	Price       decimal.Decimal
}

// MovieInput is the body of a create request. A nil field is written as NULL
// and left to the store's NOT NULL constraints.
type MovieInput struct {
	Name        *string
	Description *string
	Duration    *decimal.Decimal
	Price       *decimal.Decimal
}

// Assignment is a single column change of a partial update.
type Assignment struct {
	Column string
	Value  any
}

type MovieFilters struct {
	Pagination
	Sort  string
	Order string
}

type MovieRepository interface {
	Create(ctx context.Context, input MovieInput) (*Movie, error)
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetByName(ctx context.Context, name string) (*Movie, error)
	Update(ctx context.Context, id int, changes []Assignment) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
