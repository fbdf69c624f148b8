// Package service provides the implementation of inventory record business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	ierrors "github.com/aroldan/inventory/internal/errors"
	"github.com/aroldan/inventory/internal/store"
	"github.com/go-playground/validator/v10"
)

// RecordService defines the methods for managing inventory records.
// Every failure an operation can produce under expected conditions is one of
// the sentinel kinds in internal/errors, checkable with errors.Is.
type RecordService interface {
	// Create adds a new record under the given id.
	// Returns ErrDuplicateID if the id is already stored, ErrInvalidInput if
	// the fields fail validation, ErrStorage if the collection cannot be persisted.
	Create(ctx context.Context, id int64, input RecordInput) (*RecordDto, error)

	// FindByID retrieves a single record by its id.
	// Returns ErrNotFound if no record exists with the given id.
	FindByID(ctx context.Context, id int64) (*RecordDto, error)

	// Update replaces the fields of an existing record; id and position are unchanged.
	// Returns ErrNotFound if no record exists with the given id.
	Update(ctx context.Context, id int64, input RecordInput) (*RecordDto, error)

	// DeleteByID removes a record by its id and returns the removed record.
	// Returns ErrNotFound if no record exists with the given id.
	DeleteByID(ctx context.Context, id int64) (*RecordDto, error)

	// List returns all records in stored order with collection aggregates.
	// An empty collection is a valid empty result, not an error.
	List(ctx context.Context) (*InventoryDto, error)

	// SearchByName returns all records whose name contains the given
	// substring, case-insensitively, in stored order.
	SearchByName(ctx context.Context, name string) ([]RecordDto, error)

	// Statistics computes aggregate figures over the whole collection.
	// Returns ErrNoRecords on an empty collection.
	Statistics(ctx context.Context) (*StatisticsDto, error)
}

var _ RecordService = (*Service)(nil)

// Service implements RecordService over a RecordStore.
// Each operation loads the full collection, operates on it in memory and, for
// mutations, saves it back before returning. There is no cache between calls,
// so external changes to the backing file are visible to the next operation.
type Service struct {
	repository store.RecordStore
	validate   *validator.Validate
}

// NewService creates a new instance of RecordService with the provided repository.
func NewService(repo store.RecordStore) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
	}
}

// RecordInput represents the caller-supplied fields for creating or updating a record.
// Name and Description are whitespace-trimmed before validation.
type RecordInput struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    int64   `json:"quantity"    validate:"gte=0"`
}

// RecordDto represents the data transfer object for a stored record.
type RecordDto struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// InventoryDto is the result of List: all records plus derived aggregates.
type InventoryDto struct {
	Records    []RecordDto `json:"records"`
	TotalValue float64     `json:"total_value"`
	Count      int         `json:"count"`
}

// StatisticsDto carries the aggregate figures over the whole collection.
// MostExpensive and Cheapest are the first records reaching the extreme price
// in stored order.
type StatisticsDto struct {
	DistinctRecords  int       `json:"distinct_records"`
	TotalUnits       int64     `json:"total_units"`
	TotalValue       float64   `json:"total_value"`
	AverageUnitPrice float64   `json:"average_unit_price"`
	MostExpensive    RecordDto `json:"most_expensive"`
	Cheapest         RecordDto `json:"cheapest"`
}

// Create adds a new record to the collection and persists it.
// Preconditions are checked in order: id uniqueness first, field validation second.
func (s *Service) Create(ctx context.Context, id int64, input RecordInput) (*RecordDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}
	if indexOf(records, id) >= 0 {
		return nil, fmt.Errorf("%w: id %d", ierrors.ErrDuplicateID, id)
	}
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	record := store.Record{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       round2(input.Price),
		Quantity:    input.Quantity,
	}
	records = append(records, record)
	if err := s.repository.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}

	return toDto(record), nil
}

// FindByID retrieves a record by its id.
// Returns ErrNotFound if no record exists with the given id.
func (s *Service) FindByID(ctx context.Context, id int64) (*RecordDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", ierrors.ErrNotFound, id)
	}
	return toDto(records[i]), nil
}

// Update replaces the fields of an existing record in place and persists the
// collection. The record keeps its id and its position.
func (s *Service) Update(ctx context.Context, id int64, input RecordInput) (*RecordDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", ierrors.ErrNotFound, id)
	}
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	records[i].Name = input.Name
	records[i].Description = input.Description
	records[i].Price = round2(input.Price)
	records[i].Quantity = input.Quantity
	if err := s.repository.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}

	return toDto(records[i]), nil
}

// DeleteByID removes a record by its id, persists the collection and returns
// the removed record.
func (s *Service) DeleteByID(ctx context.Context, id int64) (*RecordDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", ierrors.ErrNotFound, id)
	}

	removed := records[i]
	records = append(records[:i], records[i+1:]...)
	if err := s.repository.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}

	return toDto(removed), nil
}

// List returns every record in stored order together with the total inventory
// value and the distinct record count. An empty collection yields an empty
// InventoryDto, not an error.
func (s *Service) List(ctx context.Context) (*InventoryDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}

	dtos := make([]RecordDto, len(records))
	var total float64
	for i, r := range records {
		dtos[i] = *toDto(r)
		total += r.Price * float64(r.Quantity)
	}

	return &InventoryDto{
		Records:    dtos,
		TotalValue: round2(total),
		Count:      len(records),
	}, nil
}

// SearchByName returns all records whose name contains the given substring,
// ignoring case, in stored order. An empty result is valid.
func (s *Service) SearchByName(ctx context.Context, name string) ([]RecordDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}

	needle := strings.ToLower(name)
	matches := make([]RecordDto, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, *toDto(r))
		}
	}
	return matches, nil
}

// Statistics computes aggregates over the full collection: distinct record
// count, total units, total inventory value, average price per unit and the
// most expensive / cheapest records. Both extreme scans are stable single
// passes, so ties keep the first record in stored order.
func (s *Service) Statistics(ctx context.Context) (*StatisticsDto, error) {
	records, err := s.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ierrors.ErrStorage, err)
	}
	if len(records) == 0 {
		return nil, ierrors.ErrNoRecords
	}

	var totalUnits int64
	var totalValue float64
	maxRec, minRec := records[0], records[0]
	for _, r := range records {
		totalUnits += r.Quantity
		totalValue += r.Price * float64(r.Quantity)
		if r.Price > maxRec.Price {
			maxRec = r
		}
		if r.Price < minRec.Price {
			minRec = r
		}
	}

	// Guard against a collection whose every quantity is zero.
	var avg float64
	if totalUnits > 0 {
		avg = totalValue / float64(totalUnits)
	}

	return &StatisticsDto{
		DistinctRecords:  len(records),
		TotalUnits:       totalUnits,
		TotalValue:       round2(totalValue),
		AverageUnitPrice: round2(avg),
		MostExpensive:    *toDto(maxRec),
		Cheapest:         *toDto(minRec),
	}, nil
}

// validateInput trims the free-text fields and checks the field invariants.
// Validation failures are reported as ErrInvalidInput with the offending
// fields named.
func (s *Service) validateInput(input *RecordInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if err := s.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s failed on rule %q", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %s", ierrors.ErrInvalidInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ierrors.ErrInvalidInput, err)
	}
	return nil
}

// indexOf returns the position of the record with the given id, or -1.
// Linear scan; id uniqueness makes the first match the only match.
func indexOf(records []store.Record, id int64) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// round2 rounds a monetary value to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// toDto converts a store.Record to a RecordDto.
func toDto(record store.Record) *RecordDto {
	return &RecordDto{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		Price:       record.Price,
		Quantity:    record.Quantity,
	}
}
