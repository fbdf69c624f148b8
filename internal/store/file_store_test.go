package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	return NewFileStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Test_FileStore_Load_MissingFile(t *testing.T) {
	// given
	fileStore := newTestStore(t)
	// when
	records, err := fileStore.Load(context.Background())
	// then
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_FileStore_Load_CorruptFile(t *testing.T) {
	// given
	fileStore := newTestStore(t)
	require.NoError(t, os.WriteFile(fileStore.path, []byte("{not json"), 0o644))
	// when
	records, err := fileStore.Load(context.Background())
	// then: fail-soft, corrupt store degrades to empty
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_FileStore_Load_WrongShape(t *testing.T) {
	// given: valid JSON that is not an array of records
	fileStore := newTestStore(t)
	require.NoError(t, os.WriteFile(fileStore.path, []byte(`{"id": 1}`), 0o644))
	// when
	records, err := fileStore.Load(context.Background())
	// then
	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_FileStore_SaveLoad_RoundTrip(t *testing.T) {
	// given
	fileStore := newTestStore(t)
	records := []Record{
		{ID: 1, Name: "Pencil HB", Description: "graphite", Price: 1500.00, Quantity: 200},
		{ID: 7, Name: "LÁPIZ PROFESIONAL", Description: "", Price: 0.5, Quantity: 0},
		{ID: 3, Name: "Notebook", Description: "100 pages", Price: 12500.00, Quantity: 50},
	}
	// when
	require.NoError(t, fileStore.Save(context.Background(), records))
	loaded, err := fileStore.Load(context.Background())
	// then: order and every field survive the round trip
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func Test_FileStore_Save_ReplacesContents(t *testing.T) {
	// given
	fileStore := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, fileStore.Save(ctx, []Record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}))
	// when: a shorter collection fully replaces the previous one
	require.NoError(t, fileStore.Save(ctx, []Record{{ID: 2, Name: "b"}}))
	loaded, err := fileStore.Load(ctx)
	// then
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(2), loaded[0].ID)
}

func Test_FileStore_Save_UnwritablePath(t *testing.T) {
	// given: the parent directory does not exist
	path := filepath.Join(t.TempDir(), "missing", "records.json")
	fileStore := NewFileStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// when
	err := fileStore.Save(context.Background(), []Record{{ID: 1, Name: "a"}})
	// then
	assert.Error(t, err)
}

func Test_FileStore_FreshInstance_SeesPriorData(t *testing.T) {
	// given: one store instance persists, a second one (fresh process) reads
	path := filepath.Join(t.TempDir(), "records.json")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	first := NewFileStore(path, logger)
	require.NoError(t, first.Save(ctx, []Record{{ID: 1, Name: "Pencil", Description: "d", Price: 1500.00, Quantity: 200}}))
	// when
	second := NewFileStore(path, logger)
	loaded, err := second.Load(ctx)
	// then
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, Record{ID: 1, Name: "Pencil", Description: "d", Price: 1500.00, Quantity: 200}, loaded[0])
}
