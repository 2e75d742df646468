package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/kioku/internal/study"
)

// SelectionStore keeps the last selected subject in a YAML file between runs.
type SelectionStore struct {
	path string
}

// NewSelectionStore creates a store backed by path.
func NewSelectionStore(path string) *SelectionStore {
	return &SelectionStore{path: path}
}

// DefaultSelectionPath returns $HOME/.config/kioku/selection.yml.
func DefaultSelectionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir() > %w", err)
	}
	return filepath.Join(home, ".config", "kioku", "selection.yml"), nil
}

// Load returns the stored selection, or nil if nothing was selected yet.
func (s *SelectionStore) Load() (*study.SelectionContext, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}
	var selection study.SelectionContext
	if err := yaml.Unmarshal(data, &selection); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}
	return &selection, nil
}

// Save overwrites the stored selection.
func (s *SelectionStore) Save(selection study.SelectionContext) error {
	data, err := yaml.Marshal(selection)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

// ResolveSubject picks the subject to show: an explicit subject is stored
// and wins, otherwise a still valid stored selection is used. An empty
// result means every subject.
func (s *SelectionStore) ResolveSubject(explicit string, now time.Time, ttl time.Duration) (string, error) {
	if explicit != "" {
		if err := s.Save(study.NewSelectionContext(explicit, now, ttl)); err != nil {
			return "", err
		}
		return explicit, nil
	}
	selection, err := s.Load()
	if err != nil {
		return "", err
	}
	if selection == nil {
		return "", nil
	}
	subject, _ := selection.SubjectAt(now)
	return subject, nil
}
