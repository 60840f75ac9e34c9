// Package project loads and scaffolds the .jeff directory of a
// product-discovery project.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

// DefaultLabel is applied to generated issues when no labels are configured.
const DefaultLabel = "jeff"

// Config is the content of .jeff/config.yaml.
type Config struct {
	Project ProjectInfo  `yaml:"project"`
	GitHub  GitHubConfig `yaml:"github"`
}

// ProjectInfo describes the project itself.
type ProjectInfo struct {
	Name    string `yaml:"name"`
	Created string `yaml:"created,omitempty"`
}

// GitHubConfig controls how issues are filed.
type GitHubConfig struct {
	// Labels is nil when the key is absent and empty when set to [].
	Labels      []string `yaml:"labels"`
	TitlePrefix string   `yaml:"title_prefix"`
	// Repo is passed to gh as --repo when set.
	Repo string `yaml:"repo,omitempty"`
}

// GitHubLabels returns a fresh copy of the base labels, defaulting to
// ["jeff"] when none are configured.
func (c Config) GitHubLabels() []string {
	if c.GitHub.Labels == nil {
		return []string{DefaultLabel}
	}
	labels := make([]string, len(c.GitHub.Labels))
	copy(labels, c.GitHub.Labels)
	return labels
}

// TitlePrefix returns the configured issue title prefix.
func (c Config) TitlePrefix() string {
	return c.GitHub.TitlePrefix
}

// LoadConfig reads config.yaml from jeffDir. A missing file yields the
// zero Config, which behaves as the defaults.
func LoadConfig(jeffDir string) (Config, error) {
	var cfg Config

	path := filepath.Join(jeffDir, ux.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read %s", path), err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.NewFileUnmarshalError(path, "YAML", err)
	}
	return cfg, nil
}
