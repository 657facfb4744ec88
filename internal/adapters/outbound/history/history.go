package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agds-alt/inspekta/internal/domain"
)

const recordsFile = ".inspekta/records.json"

// FileStore implements domain.RecordStore using JSON file storage under a
// base directory. It is the default store when no DSN is configured.
type FileStore struct {
	baseDir string
}

func New(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) Save(_ context.Context, record domain.ScoredRecord) error {
	records, err := s.load()
	if err != nil {
		return err
	}

	records = append(records, record)

	fp := filepath.Join(s.baseDir, recordsFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (s *FileStore) List(_ context.Context) ([]domain.ScoredRecord, error) {
	return s.load()
}

func (s *FileStore) load() ([]domain.ScoredRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, recordsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []domain.ScoredRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	return records, nil
}
