// Package cartstore persists the cart snapshot to a local JSON file, the
// process's stand-in for browser local storage.
package cartstore

import (
	"encoding/json"
	"os"
	"sync"

	"storefront/pkg/domain/model"
)

// FileStore writes the whole cart to one file on every save. The format is a
// bare JSON array of lines and carries no version; last writer wins when two
// processes share the same path.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *FileStore) Save(lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lines == nil {
		lines = []model.CartLine{}
	}

	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0666)
}
