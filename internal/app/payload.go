package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1_048_576

const (
	kindString  = "string"
	kindNumber  = "number"
	kindBoolean = "boolean"
	kindObject  = "object"
	kindArray   = "array"
	kindNull    = "null"
)

var movieFieldKinds = map[string]string{
	domain.MovieColumnName:        kindString,
	domain.MovieColumnDescription: kindString,
	domain.MovieColumnDuration:    kindNumber,
	domain.MovieColumnPrice:       kindNumber,
}

// moviePayload is a request body kept as raw JSON per key, so that the JSON
// type of each field can be checked before anything is decoded.
type moviePayload map[string]json.RawMessage

// readPayload decodes the body as a JSON object. An empty body or a literal
// null yields an empty payload. Bodies over maxBodyBytes are cut off and fail
// to decode.
func (app *Application) readPayload(r *http.Request) (moviePayload, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	var payload moviePayload

	err := dec.Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if dec.More() {
		return nil, errors.New("body must only contain a single JSON value")
	}

	if payload == nil {
		payload = moviePayload{}
	}

	return payload, nil
}

func kindOf(raw json.RawMessage) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return kindNull
	}

	switch trimmed[0] {
	case '"':
		return kindString
	case '{':
		return kindObject
	case '[':
		return kindArray
	case 't', 'f':
		return kindBoolean
	case 'n':
		return kindNull
	default:
		return kindNumber
	}
}

// typeError reports the first movie field, in column order, whose JSON type
// does not match. Absent and null fields are not checked.
func (p moviePayload) typeError() error {
	for _, field := range domain.MovieFields {
		raw, ok := p[field]
		if !ok {
			continue
		}

		kind := kindOf(raw)
		if kind == kindNull {
			continue
		}

		if want := movieFieldKinds[field]; kind != want {
			return fmt.Errorf(ErrFieldType, field, want)
		}
	}

	return nil
}

// name returns the movie name carried by the payload, if any.
func (p moviePayload) name() (string, bool) {
	raw, ok := p[domain.MovieColumnName]
	if !ok || kindOf(raw) != kindString {
		return "", false
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", false
	}

	return name, true
}

func (p moviePayload) movieInput() (domain.MovieInput, error) {
	var input domain.MovieInput

	targets := map[string]any{
		domain.MovieColumnName:        &input.Name,
		domain.MovieColumnDescription: &input.Description,
		domain.MovieColumnDuration:    &input.Duration,
		domain.MovieColumnPrice:       &input.Price,
	}

	for field, target := range targets {
		raw, ok := p[field]
		if !ok {
			continue
		}

		if err := json.Unmarshal(raw, target); err != nil {
			return domain.MovieInput{}, fmt.Errorf("decoding %s: %w", field, err)
		}
	}

	return input, nil
}

// assignments turns the payload into column changes in column order. Keys
// that are not movie fields are rejected.
func (p moviePayload) assignments() ([]domain.Assignment, error) {
	var unknown []string
	for key := range p {
		if _, ok := movieFieldKinds[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf(ErrUnknownKey, unknown[0])
	}

	changes := make([]domain.Assignment, 0, len(p))

	for _, field := range domain.MovieFields {
		raw, ok := p[field]
		if !ok {
			continue
		}

		value, err := decodeField(field, raw)
		if err != nil {
			return nil, err
		}

		changes = append(changes, domain.Assignment{Column: field, Value: value})
	}

	return changes, nil
}

func decodeField(field string, raw json.RawMessage) (any, error) {
	switch kindOf(raw) {
	case kindNull:
		return nil, nil
	case kindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return s, nil
	case kindNumber:
		var d decimal.Decimal
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf(ErrFieldType, field, movieFieldKinds[field])
	}
}
