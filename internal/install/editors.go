package install

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

const (
	agentsFile     = "AGENTS.md"
	commandsMarker = "## Jeff Commands"
	conductorAgent = "jeff-assistant"
)

// helpSkill is covered by the closing jeff --help line.
const helpSkill = "help"

// cursorCommands lists one jeff command per skill, described by the
// skill's front matter.
func cursorCommands(skills []Skill) string {
	var b strings.Builder
	b.WriteString("\n\n" + commandsMarker + "\n\n")
	b.WriteString("Jeff is installed. Use these commands:\n")
	for _, s := range skills {
		if s.Name == helpSkill {
			continue
		}
		fmt.Fprintf(&b, "- `jeff %s` - %s\n", s.Name, s.Description)
	}
	b.WriteString("\nRun `jeff --help` for more information.\n")
	return b.String()
}

// installCursor writes AGENTS.md plus the jeff command list to target.
func installCursor(agentsPath, target string) error {
	skills, err := Skills()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(agentsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewMissingAgentsMDError(agentsPath)
		}
		return errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read %s", agentsPath), err)
	}

	content := string(data)
	if !strings.Contains(content, commandsMarker) {
		content += cursorCommands(skills)
	}
	return writeFile(target, []byte(content))
}

// readZedSettings reads .zed/settings.json into a generic map so unrelated
// keys survive the rewrite.
func readZedSettings(path string) (map[string]any, error) {
	settings := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read %s", path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.NewFileUnmarshalError(path, "JSON", err)
	}
	return settings, nil
}

func writeZedSettings(path string, settings map[string]any) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to encode zed settings", err)
	}
	return writeFile(path, append(data, '\n'))
}

// contextSources returns the assistant map and its context_sources list.
func contextSources(settings map[string]any) (map[string]any, []any) {
	assistant, ok := settings["assistant"].(map[string]any)
	if !ok {
		assistant = map[string]any{}
		settings["assistant"] = assistant
	}
	sources, _ := assistant["context_sources"].([]any)
	return assistant, sources
}

func installZed(path string) error {
	settings, err := readZedSettings(path)
	if err != nil {
		return err
	}

	assistant, sources := contextSources(settings)
	for _, s := range sources {
		if s == agentsFile {
			return writeZedSettings(path, settings)
		}
	}
	assistant["context_sources"] = append(sources, agentsFile)
	return writeZedSettings(path, settings)
}

func uninstallZed(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	settings, err := readZedSettings(path)
	if err != nil {
		return 0, err
	}

	assistant, sources := contextSources(settings)
	kept := make([]any, 0, len(sources))
	for _, s := range sources {
		if s != agentsFile {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sources) {
		return 0, nil
	}
	assistant["context_sources"] = kept
	return 1, writeZedSettings(path, settings)
}

// readYAMLDocument parses path into a document node whose first child is
// a mapping. A missing or empty file yields an empty mapping.
func readYAMLDocument(path string) (*yaml.Node, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read %s", path), err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "YAML", err)
		}
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.NewFileUnmarshalError(path, "YAML", fmt.Errorf("top level is not a mapping"))
	}
	return doc, nil
}

func writeYAMLDocument(path string, doc *yaml.Node) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to encode conductor.yaml", err)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to encode conductor.yaml", err)
	}
	return writeFile(path, buf.Bytes())
}

// mapValue returns the value node for key, or nil.
func mapValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ensureSeq returns the sequence stored under key, creating it if needed.
func ensureSeq(m *yaml.Node, key string) *yaml.Node {
	if v := mapValue(m, key); v != nil && v.Kind == yaml.SequenceNode {
		return v
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = seq
			return seq
		}
	}
	m.Content = append(m.Content, scalar(key), seq)
	return seq
}

func ensureSeqContains(seq *yaml.Node, value string) {
	for _, item := range seq.Content {
		if item.Value == value {
			return
		}
	}
	seq.Content = append(seq.Content, scalar(value))
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func findAgent(agents *yaml.Node) int {
	for i, agent := range agents.Content {
		if agent.Kind != yaml.MappingNode {
			continue
		}
		if name := mapValue(agent, "name"); name != nil && name.Value == conductorAgent {
			return i
		}
	}
	return -1
}

func installConductor(path string) error {
	doc, err := readYAMLDocument(path)
	if err != nil {
		return err
	}

	agents := ensureSeq(doc.Content[0], "agents")
	var agent *yaml.Node
	if i := findAgent(agents); i >= 0 {
		agent = agents.Content[i]
	} else {
		agent = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		agent.Content = append(agent.Content, scalar("name"), scalar(conductorAgent))
		agents.Content = append(agents.Content, agent)
	}
	ensureSeqContains(ensureSeq(agent, "context"), agentsFile)
	ensureSeqContains(ensureSeq(agent, "tools"), "shell")

	return writeYAMLDocument(path, doc)
}

func uninstallConductor(path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}
	doc, err := readYAMLDocument(path)
	if err != nil {
		return 0, err
	}

	agents := mapValue(doc.Content[0], "agents")
	if agents == nil || agents.Kind != yaml.SequenceNode {
		return 0, nil
	}
	i := findAgent(agents)
	if i < 0 {
		return 0, nil
	}
	agents.Content = append(agents.Content[:i], agents.Content[i+1:]...)
	return 1, writeYAMLDocument(path, doc)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create %s", filepath.Dir(path)), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
