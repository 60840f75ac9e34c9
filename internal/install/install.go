package install

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

//go:embed skills/*.md
var skillFiles embed.FS

// skillDirName is the command namespace used by KindCommandDir tools.
const skillDirName = "jeff"

// Skill is one embedded command file. Content is written verbatim;
// Description and Body come from splitting off its front matter.
type Skill struct {
	Name        string
	Description string
	Body        string
	Content     []byte
}

type skillMeta struct {
	Description string `yaml:"description"`
}

// parseSkill splits the front matter of one skill file.
func parseSkill(name string, data []byte) (Skill, error) {
	var meta skillMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Skill{}, errors.Wrap(errors.ErrCodeFileUnmarshal, fmt.Sprintf("invalid front matter in skill %s", name), err)
	}
	return Skill{
		Name:        name,
		Description: strings.TrimSpace(meta.Description),
		Body:        strings.TrimSpace(string(body)),
		Content:     data,
	}, nil
}

// Skills returns the embedded skills sorted by name.
func Skills() ([]Skill, error) {
	entries, err := fs.ReadDir(skillFiles, "skills")
	if err != nil {
		return nil, err
	}
	skills := make([]Skill, 0, len(entries))
	for _, e := range entries {
		data, err := skillFiles.ReadFile("skills/" + e.Name())
		if err != nil {
			return nil, err
		}
		skill, err := parseSkill(strings.TrimSuffix(e.Name(), ".md"), data)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Report describes a completed install or uninstall.
type Report struct {
	Tool   Tool
	Scope  Scope
	Target string
	// Count is the number of files written or items removed.
	Count   int
	Summary string
}

// Installer writes into a home directory and a working directory.
type Installer struct {
	Home    string
	WorkDir string
}

// NewInstaller returns an installer for the current user and directory.
func NewInstaller() (*Installer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Installer{Home: home, WorkDir: wd}, nil
}

// Target returns the directory or file written for tool in scope.
func (in *Installer) Target(tool Tool, scope Scope) (string, error) {
	if scope == ScopeGlobal {
		if !tool.SupportsGlobal() {
			return "", errors.NewGlobalScopeError(tool.Name)
		}
		return filepath.Join(in.Home, tool.GlobalDir), nil
	}
	return filepath.Join(in.WorkDir, tool.LocalPath), nil
}

// Install installs jeff for tool in scope.
func (in *Installer) Install(tool Tool, scope Scope) (*Report, error) {
	target, err := in.Target(tool, scope)
	if err != nil {
		return nil, err
	}
	report := &Report{Tool: tool, Scope: scope, Target: target}

	switch tool.Kind {
	case KindCommandDir:
		report.Count, err = copySkills(filepath.Join(target, skillDirName), "")
		report.Summary = fmt.Sprintf("Installed %d skills", report.Count)
	case KindFlatCommands:
		report.Count, err = copySkills(target, skillDirName+"-")
		report.Summary = fmt.Sprintf("Installed %d skills", report.Count)
	case KindCursorRules:
		err = installCursor(filepath.Join(in.WorkDir, agentsFile), target)
		report.Count = 1
		report.Summary = "Created .cursorrules with jeff context"
	case KindZedSettings:
		err = installZed(target)
		report.Count = 1
		report.Summary = "Updated .zed/settings.json"
	case KindConductor:
		err = installConductor(target)
		report.Count = 1
		report.Summary = "Updated conductor.yaml"
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Uninstall removes what Install wrote. Count is zero when nothing was
// installed.
func (in *Installer) Uninstall(tool Tool, scope Scope) (*Report, error) {
	target, err := in.Target(tool, scope)
	if err != nil {
		return nil, err
	}
	report := &Report{Tool: tool, Scope: scope, Target: target}

	switch tool.Kind {
	case KindCommandDir:
		report.Count, err = removeSkillDir(filepath.Join(target, skillDirName))
	case KindFlatCommands:
		report.Count, err = removeFlatSkills(target, skillDirName+"-")
	case KindCursorRules:
		report.Count, err = removeFile(target)
	case KindZedSettings:
		report.Count, err = uninstallZed(target)
	case KindConductor:
		report.Count, err = uninstallConductor(target)
	}
	if err != nil {
		return nil, err
	}
	report.Summary = fmt.Sprintf("Removed %d item(s)", report.Count)
	return report, nil
}

func copySkills(dir, prefix string) (int, error) {
	skills, err := Skills()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create %s", dir), err)
	}
	for _, s := range skills {
		path := filepath.Join(dir, prefix+s.Name+".md")
		if err := os.WriteFile(path, s.Content, 0o644); err != nil {
			return 0, errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write %s", path), err)
		}
	}
	return len(skills), nil
}

func removeSkillDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	if err := os.RemoveAll(dir); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func removeFlatSkills(dir, prefix string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.md"))
	if err != nil {
		return 0, err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return 0, err
		}
	}
	return len(matches), nil
}

func removeFile(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	if info.IsDir() {
		return 0, nil
	}
	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return 1, nil
}
