package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Location of the config file relative to a project directory.
const (
	ConfigDirName  = ".trivia"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound reports that no directory above the start holds a config.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir returns <root>/.trivia.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns <root>/.trivia/config.yml.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// FindConfigPath walks from startDir (or the working directory) towards the
// filesystem root and returns the first .trivia/config.yml it meets. A .trivia
// directory without a config file stops the walk with an error.
func FindConfigPath(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", startDir, err)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		path, found, err := probe(dir)
		if err != nil || found {
			return path, err
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: searched %s and its parents for %s", ErrConfigNotFound, start, filepath.Join(ConfigDirName, ConfigFileName))
		}
	}
}

// probe reports whether dir holds a usable config file.
func probe(dir string) (string, bool, error) {
	path := ConfigPath(dir)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", false, fmt.Errorf("%s is a directory, expected a file", path)
	case err == nil:
		return path, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info, err := os.Stat(ConfigDir(dir)); err == nil && info.IsDir() {
		return "", false, fmt.Errorf("%s exists but has no %s; run `trivia init`", ConfigDir(dir), ConfigFileName)
	}
	return "", false, nil
}
