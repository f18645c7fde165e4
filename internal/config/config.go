// ABOUTME: Layered resolution of database and key file locations
// ABOUTME: Explicit flag > KP_DB_FILE/KP_KEY_FILE env > ~/.kpconfig YAML > absent

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kp-go/internal/log"
)

// Config holds the optional ~/.kpconfig file contents.
type Config struct {
	DBFile  string `yaml:"db_file"`
	KeyFile string `yaml:"key_file"`
}

// Load reads the user config file. A missing file is not an error; the
// zero Config is returned so layering falls through to the next source.
func Load() (*Config, error) {
	return loadFile(ConfigFile())
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// Sources bundles the layered inputs for path resolution. FlagDB and
// FlagKey come from the command line; File is the loaded config file.
type Sources struct {
	FlagDB  string
	FlagKey string
	File    *Config
}

// DatabasePath resolves the database file location, highest-precedence
// source first. A database file is required.
func (s Sources) DatabasePath() (string, error) {
	path, origin := s.pick(s.FlagDB, "KP_DB_FILE", s.fileDB())
	if path == "" {
		return "", errors.New("must supply a db filename")
	}
	log.Debug("config: db file %s (from %s)", path, origin)
	return ExpandUser(path), nil
}

// KeyFilePath resolves the optional key file location. Empty means the
// database is protected by password only.
func (s Sources) KeyFilePath() string {
	path, origin := s.pick(s.FlagKey, "KP_KEY_FILE", s.fileKey())
	if path != "" {
		log.Debug("config: key file %s (from %s)", path, origin)
	}
	return ExpandUser(path)
}

func (s Sources) fileDB() string {
	if s.File == nil {
		return ""
	}
	return s.File.DBFile
}

func (s Sources) fileKey() string {
	if s.File == nil {
		return ""
	}
	return s.File.KeyFile
}

func (s Sources) pick(flagValue, envVar, fileValue string) (value, origin string) {
	if flagValue != "" {
		return flagValue, "flag"
	}
	if v := os.Getenv(envVar); v != "" {
		return v, envVar
	}
	if fileValue != "" {
		return fileValue, ConfigFile()
	}
	return "", ""
}
