// Package usecase implements the business logic for the directory feature.
package usecase

import "errors"

var (
	// ErrAmbiguousResult is returned when a lookup that expects a single user
	// matches more than one record.
	ErrAmbiguousResult = errors.New("ambiguous result: more than one user matches")

	// ErrInvalidSearchField is returned when a search names a field that is not searchable.
	ErrInvalidSearchField = errors.New("invalid search field")
)
