package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// FileStore implements RecordStore over a single JSON file holding the whole
// collection as an ordered array. Every Save rewrites the file in full; there
// is no locking and no partial-write protection, so two writers racing on the
// same file are last-writer-wins on the entire collection. Acceptable for the
// single-process, single-user scope this store is built for.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a RecordStore backed by the JSON file at path.
// The file does not need to exist yet; it is created on the first Save.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load reads the whole collection from the backing file.
// A missing file is an empty collection. An unreadable or undecodable file is
// logged and also treated as empty (fail-soft): a corrupt store degrades to
// "no records" instead of failing every caller. Note this means a truncated
// or hand-mangled file silently hides its previous contents until the next
// Save overwrites them.
func (s *FileStore) Load(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		s.logger.WarnContext(ctx, "record file unreadable, treating store as empty",
			"path", s.path, "error", err)
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WarnContext(ctx, "record file undecodable, treating store as empty",
			"path", s.path, "error", err)
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save serializes the ordered collection and overwrites the backing file.
func (s *FileStore) Save(_ context.Context, records []Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record file %s: %w", s.path, err)
	}
	return nil
}
