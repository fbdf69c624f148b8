// Package store provides an interface for inventory record storage operations.
package store

import "context"

// Record is one product entry in the inventory collection.
// ID is the caller-chosen primary key, unique across the collection.
// Price is kept rounded to 2 decimal places by the operations layer.
type Record struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// RecordStore is an interface for record persistence.
// It abstracts the backing store, allowing for different implementations (e.g., file, in-memory).
type RecordStore interface {
	// Load returns every stored record in insertion order.
	// A missing backing store yields an empty slice, not an error.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces the entire stored collection with the given ordered records.
	// Returns an error if the collection cannot be persisted.
	Save(ctx context.Context, records []Record) error
}
