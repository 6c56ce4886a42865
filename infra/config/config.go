package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// Cluster configures a clustering evaluation run.
type Cluster struct {
	// Factor is the number of clusters to ask for, per distinct label.
	Factor     int    `json:"factor"`
	Iterations int    `json:"iterations"`
	Seed       int64  `json:"seed"`
	Shuffle    bool   `json:"shuffle"`
	Store      bool   `json:"store"`
	Table      string `json:"table"`
}

// Default returns the default evaluation config.
func Default() Cluster {
	return Cluster{
		Factor:     2,
		Iterations: 300,
		Shuffle:    true,
		Table:      "cluster",
	}
}

// Validate checks the config values.
func (c Cluster) Validate() error {
	if c.Factor < 1 {
		return fmt.Errorf("cluster factor must be positive: %d", c.Factor)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive: %d", c.Iterations)
	}
	return nil
}

// Load loads the config from the given file on top of the defaults.
func Load(file string) (Cluster, error) {
	cfg := Default()
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return cfg, fmt.Errorf("could not load config from %s: %w", file, err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not unmarshal the config from %s: %w", file, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config in %s: %w", file, err)
	}
	log.Info().Str("file", file).Msg("loaded config")
	return cfg, nil
}

// LoadDefault loads the config for the given key from the config directory.
// Falls back to the defaults if there is no such file.
func LoadDefault(key string) (Cluster, error) {
	file := filepath.Join(path, fmt.Sprintf("%s.json", key))
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("config", key).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(file)
}
