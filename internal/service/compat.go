package service

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is the single failure result of the legacy surface.
var ErrKeyNotFound = errors.New("key not found")

// Compat offers the simplified four-operation surface some older callers
// expect: every failure, whatever its actual kind, collapses into
// ErrKeyNotFound, and successes are one-line summary strings. New callers
// should use RecordService directly, which distinguishes error kinds.
type Compat struct {
	svc RecordService
}

// NewCompat wraps a caller-owned RecordService with the legacy surface.
// There is no shared default instance; callers construct and hold their own.
func NewCompat(svc RecordService) *Compat {
	return &Compat{svc: svc}
}

// Add creates a record. Any failure reports ErrKeyNotFound.
func (c *Compat) Add(ctx context.Context, id int64, input RecordInput) (string, error) {
	record, err := c.svc.Create(ctx, id, input)
	if err != nil {
		return "", ErrKeyNotFound
	}
	return fmt.Sprintf("added: %d -> %s", record.ID, record.Name), nil
}

// Get looks up a record. Any failure reports ErrKeyNotFound.
func (c *Compat) Get(ctx context.Context, id int64) (string, error) {
	record, err := c.svc.FindByID(ctx, id)
	if err != nil {
		return "", ErrKeyNotFound
	}
	return fmt.Sprintf("%d -> %s | %s | price: %.2f | quantity: %d",
		record.ID, record.Name, record.Description, record.Price, record.Quantity), nil
}

// Update replaces a record's fields. Any failure reports ErrKeyNotFound.
func (c *Compat) Update(ctx context.Context, id int64, input RecordInput) (string, error) {
	record, err := c.svc.Update(ctx, id, input)
	if err != nil {
		return "", ErrKeyNotFound
	}
	return fmt.Sprintf("updated: %d -> %s", record.ID, record.Name), nil
}

// Remove deletes a record. Any failure reports ErrKeyNotFound.
func (c *Compat) Remove(ctx context.Context, id int64) (string, error) {
	record, err := c.svc.DeleteByID(ctx, id)
	if err != nil {
		return "", ErrKeyNotFound
	}
	return fmt.Sprintf("removed: %d", record.ID), nil
}
