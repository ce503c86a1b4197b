package highscore_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/highscore"
)

var (
	_ game.HighScoreStore = (*highscore.FileStore)(nil)
	_ game.HighScoreStore = (*highscore.MemoryStore)(nil)
)

func TestFileStore(t *testing.T) {
	t.Run("missing file reads as zero", func(t *testing.T) {
		s := highscore.NewFileStore(filepath.Join(t.TempDir(), "scores.yaml"))
		score, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
		s := highscore.NewFileStore(path)
		require.NoError(t, s.Save(42))

		score, err := highscore.NewFileStore(path).Load()
		require.NoError(t, err)
		assert.Equal(t, 42, score)
		assert.Equal(t, path, s.Path())

		_, err = os.Stat(path + ".tmp")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("other keys survive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("volume: 7\ntunableWhiteTetrisHighScore: 3\n"), 0o644))

		s := highscore.NewFileStore(path)
		score, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 3, score)

		require.NoError(t, s.Save(9))
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var values map[string]int
		require.NoError(t, yaml.Unmarshal(data, &values))
		assert.Equal(t, map[string]int{"volume": 7, highscore.Key: 9}, values)
	})

	t.Run("non-integer keys survive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: dark\nvolume: 0.5\ntunableWhiteTetrisHighScore: 5\n"), 0o644))

		s := highscore.NewFileStore(path)
		score, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 5, score)

		require.NoError(t, s.Save(9))
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var values map[string]any
		require.NoError(t, yaml.Unmarshal(data, &values))
		assert.Equal(t, map[string]any{"theme": "dark", "volume": 0.5, highscore.Key: 9}, values)
	})

	t.Run("corrupt file is left alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		corrupt := []byte("tunableWhiteTetrisHighScore: [nope")
		require.NoError(t, os.WriteFile(path, corrupt, 0o644))

		s := highscore.NewFileStore(path)
		_, err := s.Load()
		assert.Error(t, err)

		assert.Error(t, s.Save(5))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, corrupt, data)
	})

	t.Run("non-integer high score", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tunableWhiteTetrisHighScore: lots\n"), 0o644))

		s := highscore.NewFileStore(path)
		_, err := s.Load()
		assert.ErrorContains(t, err, "not an integer")

		require.NoError(t, s.Save(4))
		score, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 4, score)
	})

	t.Run("engine reads past unrelated keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		original := []byte("theme: dark\ntunableWhiteTetrisHighScore: 5\n")
		require.NoError(t, os.WriteFile(path, original, 0o644))

		e := game.NewEngine(game.WithHighScoreStore(highscore.NewFileStore(path)))
		assert.Equal(t, 5, e.HighScore())
	})

	t.Run("negative values read as zero", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tunableWhiteTetrisHighScore: -4\n"), 0o644))

		score, err := highscore.NewFileStore(path).Load()
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})
}

func TestMemoryStore(t *testing.T) {
	boom := errors.New("boom")
	s := &highscore.MemoryStore{Value: 3}

	score, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, score)

	require.NoError(t, s.Save(8))
	assert.Equal(t, 8, s.Value)

	s.LoadErr = boom
	s.SaveErr = boom
	_, err = s.Load()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Save(10), boom)
	assert.Equal(t, 8, s.Value)
	assert.Equal(t, 2, s.Saves)
}

func TestEnginePersistsThroughFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	store := highscore.NewFileStore(path)
	require.NoError(t, store.Save(2))

	e := game.NewEngine(game.WithHighScoreStore(store))
	assert.Equal(t, 2, e.HighScore())
}
