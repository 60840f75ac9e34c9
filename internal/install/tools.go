// Package install copies jeff skills and context wiring into AI coding
// tools.
package install

import (
	"path/filepath"
	"sort"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// Kind selects how a tool is installed.
type Kind int

const (
	// KindCommandDir copies skills into a jeff/ subdirectory of the
	// tool's command directory.
	KindCommandDir Kind = iota
	// KindFlatCommands copies skills as jeff-<name>.md files.
	KindFlatCommands
	// KindCursorRules writes .cursorrules from AGENTS.md.
	KindCursorRules
	// KindZedSettings adds AGENTS.md to Zed's assistant context.
	KindZedSettings
	// KindConductor adds a jeff agent to conductor.yaml.
	KindConductor
)

// Tool describes one install target.
type Tool struct {
	Key  string
	Name string
	Kind Kind
	// GlobalDir is relative to the home directory; empty means the tool
	// is local-only.
	GlobalDir string
	// LocalPath is relative to the working directory.
	LocalPath string
}

// SupportsGlobal reports whether the tool has a per-user location.
func (t Tool) SupportsGlobal() bool {
	return t.GlobalDir != ""
}

var tools = []Tool{
	{
		Key:       "claude",
		Name:      "Claude Code",
		Kind:      KindCommandDir,
		GlobalDir: filepath.Join(".claude", "commands"),
		LocalPath: filepath.Join(".claude", "commands"),
	},
	{
		Key:       "opencode",
		Name:      "Opencode",
		Kind:      KindFlatCommands,
		GlobalDir: filepath.Join(".config", "opencode", "command"),
		LocalPath: filepath.Join(".opencode", "command"),
	},
	{
		Key:       "cursor",
		Name:      "Cursor",
		Kind:      KindCursorRules,
		LocalPath: ".cursorrules",
	},
	{
		Key:       "zed",
		Name:      "Zed",
		Kind:      KindZedSettings,
		LocalPath: filepath.Join(".zed", "settings.json"),
	},
	{
		Key:       "conductor",
		Name:      "Conductor",
		Kind:      KindConductor,
		LocalPath: "conductor.yaml",
	},
}

// Tools returns the supported tools in menu order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Keys returns the tool keys sorted alphabetically.
func Keys() []string {
	keys := make([]string, len(tools))
	for i, t := range tools {
		keys[i] = t.Key
	}
	sort.Strings(keys)
	return keys
}

// Lookup finds a tool by key.
func Lookup(key string) (Tool, error) {
	for _, t := range tools {
		if t.Key == key {
			return t, nil
		}
	}
	return Tool{}, errors.NewUnknownToolError(key, Keys())
}

// Scope is where a tool is installed.
type Scope int

const (
	// ScopeUnset means neither --global nor --local was given.
	ScopeUnset Scope = iota
	ScopeGlobal
	ScopeLocal
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "globally"
	case ScopeLocal:
		return "locally"
	default:
		return "unset"
	}
}

// ResolveScope validates the scope flags for tool. It returns ScopeUnset
// only when the tool supports both scopes and the caller must choose.
func ResolveScope(tool Tool, global, local bool) (Scope, error) {
	switch {
	case global && local:
		return ScopeUnset, errors.NewScopeConflictError()
	case global:
		if !tool.SupportsGlobal() {
			return ScopeUnset, errors.NewGlobalScopeError(tool.Name)
		}
		return ScopeGlobal, nil
	case local:
		return ScopeLocal, nil
	case !tool.SupportsGlobal():
		return ScopeLocal, nil
	default:
		return ScopeUnset, nil
	}
}
