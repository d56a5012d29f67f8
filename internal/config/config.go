// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading with precedence: CLI > ENV > config file > defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by the CLI
const (
	EnvBasename = "TEMPDIR_BASENAME"
	EnvTempRoot = "TEMPDIR_ROOT"
	EnvNoClean  = "TEMPDIR_NO_CLEAN"
)

// File represents the tempdir configuration file
type File struct {
	Basename string `yaml:"basename"`
	TempRoot string `yaml:"temproot"`
	NoClean  bool   `yaml:"no_clean"`
	GitRoot  bool   `yaml:"git_root"` // Use the git work tree name as basename

	path string
}

// Path returns where the file was loaded from, empty when no file was found
func (f *File) Path() string {
	return f.path
}

// Paths returns the config file locations to check, in order
func Paths() []string {
	paths := []string{".tempdir.yaml", ".tempdir.yml"}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths,
			filepath.Join(xdg, "tempdir", "config.yaml"),
			filepath.Join(xdg, "tempdir", "config.yml"),
		)
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "tempdir", "config.yaml"),
			filepath.Join(home, ".config", "tempdir", "config.yml"),
		)
	}

	return paths
}

// Load reads the first config file found. An explicit path must exist.
// Without an explicit path and no file on disk an empty File is returned.
func Load(explicit string) (*File, error) {
	if explicit != "" {
		return loadFromPath(explicit)
	}

	for _, path := range Paths() {
		cfg, err := loadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return &File{}, nil
}

func loadFromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.path = path
	return &cfg, nil
}

// ResolveNoClean applies flag > env > file precedence to the no-clean switch
func ResolveNoClean(flagSet, flagValue bool, file *File) (bool, error) {
	if flagSet {
		return flagValue, nil
	}
	if env := os.Getenv(EnvNoClean); env != "" {
		v, err := strconv.ParseBool(env)
		if err != nil {
			return false, fmt.Errorf("invalid %s value %q: %w", EnvNoClean, env, err)
		}
		return v, nil
	}
	if file != nil {
		return file.NoClean, nil
	}
	return false, nil
}
