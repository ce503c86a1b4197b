// Package highscore persists the LEDtris high score. Stores satisfy
// game.HighScoreStore.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Key is the entry the high score is stored under.
const Key = "tunableWhiteTetrisHighScore"

// FileStore keeps the high score in a small YAML key-value document. Other
// keys in the document are preserved on save.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) read() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high score file: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode high score file %s: %w", s.path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// Load returns the stored high score. A missing file or key yields 0.
func (s *FileStore) Load() (int, error) {
	values, err := s.read()
	if err != nil {
		return 0, err
	}

	var score int
	switch v := values[Key].(type) {
	case nil:
	case int:
		score = v
	default:
		return 0, fmt.Errorf("high score file %s: %s is %v, not an integer", s.path, Key, v)
	}
	return max(score, 0), nil
}

// Save writes score under Key. Only Key is touched; a document that cannot
// be decoded is left as it is and the decode error returned.
func (s *FileStore) Save(score int) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[Key] = score

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace high score file: %w", err)
	}
	return nil
}

// MemoryStore keeps the high score in process. LoadErr and SaveErr, when
// set, are returned instead of touching the value.
type MemoryStore struct {
	Value   int
	LoadErr error
	SaveErr error
	Saves   int
}

func (s *MemoryStore) Load() (int, error) {
	if s.LoadErr != nil {
		return 0, s.LoadErr
	}
	return s.Value, nil
}

func (s *MemoryStore) Save(score int) error {
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Value = score
	return nil
}
