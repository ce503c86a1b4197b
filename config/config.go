// Package config holds the settings shared by the LEDtris binaries.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// CellSize is the edge length of one board cell in pixels.
	CellSize int `yaml:"cell_size"`
	// HighScorePath is the YAML file the high score is kept in.
	HighScorePath string `yaml:"high_score_path"`
	// Debug opens the ImGui inspector on start.
	Debug bool `yaml:"debug"`
	// Seed fixes the piece sequence when non-zero.
	Seed uint64 `yaml:"seed"`
	// TPS is the ebiten update rate.
	TPS int `yaml:"tps"`
}

func Default() Config {
	path := "ledtris.yaml"
	if dir, err := os.UserConfigDir(); err == nil {
		path = filepath.Join(dir, "ledtris", "highscore.yaml")
	}
	return Config{
		CellSize:      30,
		HighScorePath: path,
		TPS:           60,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.CellSize < 8 {
		return fmt.Errorf("cell_size %d is below the minimum of 8", c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.HighScorePath == "" {
		return errors.New("high_score_path is empty")
	}
	return nil
}

// Parse builds a Config from args. A -config file, if given, is applied over
// the defaults first and the remaining flags override it.
func Parse(name string, args []string) (Config, error) {
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	path := pre.String("config", "", "")
	scratch := Default()
	scratch.RegisterFlags(pre)
	// errors are reported by the second pass
	_ = pre.Parse(args)

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.String("config", *path, "YAML config file.")
	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// RegisterFlags binds command line overrides for every field.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.CellSize, "cell", c.CellSize, "Board cell size in pixels.")
	flags.StringVar(&c.HighScorePath, "highscore", c.HighScorePath, "File the high score is stored in.")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Open the debug inspector.")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Fixed random seed for the piece sequence (0 picks one).")
	flags.IntVar(&c.TPS, "tps", c.TPS, "Updates per second.")
}
