package ux

import (
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// FindProjectRoot walks from start up to the filesystem root and returns
// the first directory that contains a .jeff directory.
func FindProjectRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, JeffDirName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", errors.NewProjectNotFoundError(abs)
}

// DiscoverJeffDir returns the .jeff directory governing the current
// working directory.
func DiscoverJeffDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return DiscoverJeffDirFrom(cwd)
}

// DiscoverJeffDirFrom returns the .jeff directory governing start.
func DiscoverJeffDirFrom(start string) (string, error) {
	root, err := FindProjectRoot(start)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, JeffDirName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
