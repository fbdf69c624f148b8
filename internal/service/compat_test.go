package service

import (
	"context"
	"testing"

	"github.com/aroldan/inventory/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Compat_SuccessRound(t *testing.T) {
	// given
	compat := NewCompat(NewService(&mockRecordStore{}))
	ctx := context.Background()

	// when / then: the original add -> get -> update -> remove round
	added, err := compat.Add(ctx, 99, RecordInput{Name: "Test record", Description: "For testing", Price: 999.0, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, "added: 99 -> Test record", added)

	got, err := compat.Get(ctx, 99)
	require.NoError(t, err)
	assert.Contains(t, got, "Test record")
	assert.Contains(t, got, "999.00")

	updated, err := compat.Update(ctx, 99, RecordInput{Name: "Modified record", Description: "d", Price: 1111.0, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "updated: 99 -> Modified record", updated)

	removed, err := compat.Remove(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, "removed: 99", removed)
}

func Test_Compat_CollapsesAllFailureKinds(t *testing.T) {
	// given
	mockStore := &mockRecordStore{records: []store.Record{{ID: 1, Name: "taken", Price: 1, Quantity: 1}}}
	compat := NewCompat(NewService(mockStore))
	ctx := context.Background()

	testCases := []struct {
		name string
		call func() (string, error)
	}{
		{name: "duplicate id on add", call: func() (string, error) {
			return compat.Add(ctx, 1, validInput())
		}},
		{name: "invalid input on add", call: func() (string, error) {
			return compat.Add(ctx, 2, RecordInput{Name: "", Price: 1, Quantity: 1})
		}},
		{name: "missing id on get", call: func() (string, error) {
			return compat.Get(ctx, 42)
		}},
		{name: "missing id on update", call: func() (string, error) {
			return compat.Update(ctx, 42, validInput())
		}},
		{name: "invalid input on update", call: func() (string, error) {
			return compat.Update(ctx, 1, RecordInput{Name: "", Price: 1, Quantity: 1})
		}},
		{name: "missing id on remove", call: func() (string, error) {
			return compat.Remove(ctx, 42)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			result, err := tc.call()
			// then: every failure kind collapses into the one generic error
			assert.ErrorIs(t, err, ErrKeyNotFound)
			assert.Empty(t, result)
		})
	}
}
