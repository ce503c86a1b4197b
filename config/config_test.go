package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/ledtris/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.CellSize)
		assert.Equal(t, 60, cfg.TPS)
		assert.NotEmpty(t, cfg.HighScorePath)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledtris.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cell_size: 24\ndebug: true\nseed: 99\n"), 0o644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.CellSize)
		assert.True(t, cfg.Debug)
		assert.Equal(t, uint64(99), cfg.Seed)
		assert.Equal(t, 60, cfg.TPS)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledtris.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cell_size: 2\n"), 0o644))

		_, err := config.Load(path)
		assert.ErrorContains(t, err, "cell_size")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledtris.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cell_size: [\n"), 0o644))

		_, err := config.Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.TPS = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.HighScorePath = ""
	assert.Error(t, cfg.Validate())
}

func TestRegisterFlags(t *testing.T) {
	cfg := config.Default()
	fs := flag.NewFlagSet("ledtris", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"-cell", "20", "-debug", "-highscore", "/tmp/hs.yaml", "-seed", "7"}))
	assert.Equal(t, 20, cfg.CellSize)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/hs.yaml", cfg.HighScorePath)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 60, cfg.TPS)
}

func TestParse(t *testing.T) {
	t.Run("flags only", func(t *testing.T) {
		cfg, err := config.Parse("ledtris", []string{"-cell", "16"})
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.CellSize)
	})

	t.Run("flags override the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledtris.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cell_size: 24\ntps: 30\n"), 0o644))

		cfg, err := config.Parse("ledtris", []string{"-config", path, "-tps", "90"})
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.CellSize)
		assert.Equal(t, 90, cfg.TPS)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		_, err := config.Parse("ledtris", []string{"-cell", "1"})
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := config.Parse("ledtris", []string{"-volume", "3"})
		assert.Error(t, err)
	})
}
