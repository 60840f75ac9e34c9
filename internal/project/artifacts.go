package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

// Project is an opened .jeff directory.
type Project struct {
	*ux.PathDefaults
	Config Config
}

// Open discovers the project governing start and loads its config.
func Open(start string) (*Project, error) {
	jeffDir, err := ux.DiscoverJeffDirFrom(start)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(jeffDir)
	if err != nil {
		return nil, err
	}

	return &Project{
		PathDefaults: ux.NewPathDefaults(jeffDir),
		Config:       cfg,
	}, nil
}

// ReadArtifact returns the content of path and whether it exists.
func ReadArtifact(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read %s", path), err)
	}
	return string(data), true, nil
}

// RequireArtifact returns the content of path, or ARTIFACT-001 naming the
// file when it does not exist.
func RequireArtifact(path string) (string, error) {
	content, ok, err := ReadArtifact(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.NewArtifactNotFoundError(filepath.Base(path))
	}
	return content, nil
}
