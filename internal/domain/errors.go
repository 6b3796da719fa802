package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrMovieAlreadyExists = errors.New("movie already exists")
	ErrInvalidData        = errors.New("invalid data")
	ErrNoColumnsToUpdate  = errors.New("no columns to update")
	ErrColumnNotUpdatable = errors.New("column is not updatable")
)
