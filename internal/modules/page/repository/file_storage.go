package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"
	"github.com/yamitzky/portfolio/internal/modules/page/domain"
	"github.com/yamitzky/portfolio/internal/shared/errors"
)

// FileStorage implements Repository with one JSON snapshot per variant
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based page repository
func NewFileStorage(basePath string) (Repository, error) {
	pagePath := filepath.Join(basePath, "pages")
	if err := os.MkdirAll(pagePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create pages directory").Wrap(err)
	}

	return &FileStorage{basePath: pagePath}, nil
}

func (s *FileStorage) SavePage(page *domain.Page) error {
	return s.SavePages(page)
}

// SavePages writes every snapshot to a temp file first and only renames once all writes succeeded
func (s *FileStorage) SavePages(pages ...*domain.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmps := make([]string, 0, len(pages))
	cleanup := func() {
		for _, tmp := range tmps {
			os.Remove(tmp)
		}
	}

	for _, page := range pages {
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			cleanup()
			return oops.With("variant", page.Variant, "context", "failed to marshal page").Wrap(err)
		}

		tmp := s.path(page.Variant) + ".tmp"
		if err := os.WriteFile(tmp, data, 0644); err != nil {
			cleanup()
			return oops.With("path", tmp, "context", "failed to write page").Wrap(err)
		}
		tmps = append(tmps, tmp)
	}

	for i, page := range pages {
		path := s.path(page.Variant)
		if err := os.Rename(tmps[i], path); err != nil {
			cleanup()
			return oops.With("path", path, "context", "failed to replace page").Wrap(err)
		}
	}
	return nil
}

func (s *FileStorage) GetPage(variant domain.Variant) (*domain.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.path(variant)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrPageNotFound
		}
		return nil, oops.With("variant", variant, "context", "failed to read page").Wrap(err)
	}

	var page domain.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, oops.With("variant", variant, "context", "failed to unmarshal page").Wrap(err)
	}

	return &page, nil
}

func (s *FileStorage) path(variant domain.Variant) string {
	return filepath.Join(s.basePath, variant.String()+".json")
}
