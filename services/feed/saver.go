package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"readycleans/models"
)

// FileStore keeps every post in one JSON array on disk. Writes replace the
// file atomically so readers never see a half-written list.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored posts in insertion order. A missing file is an
// empty list.
func (s *FileStore) Load() ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Append adds post to the end of the list and returns the new length.
func (s *FileStore) Append(post models.BlogPost) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.load()
	if err != nil {
		return 0, err
	}
	posts = append(posts, post)
	if err := s.write(posts); err != nil {
		return 0, err
	}
	return len(posts), nil
}

func (s *FileStore) load() ([]models.BlogPost, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.BlogPost{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blog file: %w", err)
	}
	if len(data) == 0 {
		return []models.BlogPost{}, nil
	}
	var posts []models.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse blog file: %w", err)
	}
	return posts, nil
}

func (s *FileStore) write(posts []models.BlogPost) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create blog dir: %w", err)
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal blog posts: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".blogs-*.json")
	if err != nil {
		return fmt.Errorf("create temp blog file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp blog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp blog file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace blog file: %w", err)
	}
	return nil
}
