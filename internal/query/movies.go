// Package query builds the SQL statements run against the movies table.
//
// Identifiers that depend on client input (sort and update columns) are first
// checked against an allow-list and then quoted with pgx.Identifier. Every
// value is bound as a positional parameter, so client input never becomes
// part of the statement grammar.
package query

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-catalog/internal/domain"
)

const movieColumns = `id, name, description, duration, price`

// Query is a statement text plus its positional arguments.
type Query struct {
	Text string
	Args []any
}

var (
	sortableColumns = map[string]bool{
		domain.MovieColumnPrice:    true,
		domain.MovieColumnDuration: true,
	}

	updatableColumns = map[string]bool{
		domain.MovieColumnName:        true,
		domain.MovieColumnDescription: true,
		domain.MovieColumnDuration:    true,
		domain.MovieColumnPrice:       true,
	}
)

// IsSortable reports whether movies may be ordered by column.
func IsSortable(column string) bool {
	return sortableColumns[column]
}

// SortDirection maps order to ASC or DESC, case-insensitively. Anything else
// is ASC.
func SortDirection(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}

	return "ASC"
}

func InsertMovie(input domain.MovieInput) Query {
	return Query{
		Text: `INSERT INTO movies (name, duration, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + movieColumns,
		Args: []any{input.Name, input.Duration, input.Description, input.Price},
	}
}

// ListMovies selects one page of movies. Without an allow-listed sort column
// rows come back in id order.
func ListMovies(filters domain.MovieFilters) Query {
	id := pgx.Identifier{domain.MovieColumnID}.Sanitize()
	orderBy := id + " ASC"

	if IsSortable(filters.Sort) {
		orderBy = fmt.Sprintf("%s %s, %s ASC",
			pgx.Identifier{filters.Sort}.Sanitize(),
			SortDirection(filters.Order),
			id)
	}

	return Query{
		Text: fmt.Sprintf(`SELECT %s
		FROM movies
		ORDER BY %s
		LIMIT $1 OFFSET $2`, movieColumns, orderBy),
		Args: []any{filters.Limit(), filters.Offset()},
	}
}

func MovieByID(id int) Query {
	return Query{
		Text: `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`,
		Args: []any{id},
	}
}

func MovieByName(name string) Query {
	return Query{
		Text: `SELECT ` + movieColumns + ` FROM movies WHERE name = $1 LIMIT 1`,
		Args: []any{name},
	}
}

// UpdateMovie renders changes as a single multi-column assignment. The id is
// bound as $1 and the new values follow from $2 in the order of changes.
func UpdateMovie(id int, changes []domain.Assignment) (Query, error) {
	if len(changes) == 0 {
		return Query{}, domain.ErrNoColumnsToUpdate
	}

	columns := make([]string, len(changes))
	placeholders := make([]string, len(changes))
	args := make([]any, 0, len(changes)+1)
	args = append(args, id)

	for i, change := range changes {
		if !updatableColumns[change.Column] {
			return Query{}, fmt.Errorf("%w: %s", domain.ErrColumnNotUpdatable, change.Column)
		}

		columns[i] = pgx.Identifier{change.Column}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, change.Value)
	}

	return Query{
		Text: fmt.Sprintf(`UPDATE movies
		SET (%s) = ROW (%s)
		WHERE id = $1
		RETURNING %s`, strings.Join(columns, ", "), strings.Join(placeholders, ", "), movieColumns),
		Args: args,
	}, nil
}

func DeleteMovie(id int) Query {
	return Query{
		Text: `DELETE FROM movies WHERE id = $1`,
		Args: []any{id},
	}
}
