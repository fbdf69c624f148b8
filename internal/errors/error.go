// Package errors provides custom error types for inventory record operations.
package errors

import "errors"

var (
	// ErrDuplicateID is returned when a create names an id that is already stored.
	ErrDuplicateID = errors.New("record id already exists")

	// ErrNotFound is returned when an operation references an absent record id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned when record fields fail validation.
	ErrInvalidInput = errors.New("invalid record data")

	// ErrStorage is returned when the backing file cannot be written.
	ErrStorage = errors.New("storage failure")

	// ErrNoRecords is returned by aggregate operations on an empty collection.
	ErrNoRecords = errors.New("no records stored")
)
