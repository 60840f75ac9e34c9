package ux

import (
	"path/filepath"
)

// Directory and file names that make up a jeff project.
const (
	JeffDirName    = ".jeff"
	ConfigFileName = "config.yaml"

	StoryMapFile      = "STORY_MAP.md"
	OpportunitiesFile = "OPPORTUNITIES.md"
	HypothesesFile    = "HYPOTHESES.md"
	TasksFile         = "TASKS.md"

	InterviewsFile        = "USER_INTERVIEWS.md"
	ValidationResultsFile = "VALIDATION_RESULTS.md"
	InsightsFile          = "INSIGHTS.md"

	PromptsDirName  = "prompts"
	ResearchDirName = "research"
	IssuesDirName   = "issues"
)

// PathDefaults names every file inside a .jeff directory
type PathDefaults struct {
	JeffDir string
}

// NewPathDefaults creates PathDefaults for the .jeff directory at jeffDir
func NewPathDefaults(jeffDir string) *PathDefaults {
	return &PathDefaults{
		JeffDir: jeffDir,
	}
}

// ProjectRoot returns the directory holding .jeff
func (pd *PathDefaults) ProjectRoot() string {
	return filepath.Dir(pd.JeffDir)
}

// ConfigFile returns the path to config.yaml
func (pd *PathDefaults) ConfigFile() string {
	return filepath.Join(pd.JeffDir, ConfigFileName)
}

// StoryMapFile returns the path to STORY_MAP.md
func (pd *PathDefaults) StoryMapFile() string {
	return filepath.Join(pd.JeffDir, StoryMapFile)
}

// OpportunitiesFile returns the path to OPPORTUNITIES.md
func (pd *PathDefaults) OpportunitiesFile() string {
	return filepath.Join(pd.JeffDir, OpportunitiesFile)
}

// HypothesesFile returns the path to HYPOTHESES.md
func (pd *PathDefaults) HypothesesFile() string {
	return filepath.Join(pd.JeffDir, HypothesesFile)
}

// TasksFile returns the path to TASKS.md
func (pd *PathDefaults) TasksFile() string {
	return filepath.Join(pd.JeffDir, TasksFile)
}

// ResearchDir returns the research notes directory
func (pd *PathDefaults) ResearchDir() string {
	return filepath.Join(pd.JeffDir, ResearchDirName)
}

// InterviewsFile returns the path to research/USER_INTERVIEWS.md
func (pd *PathDefaults) InterviewsFile() string {
	return filepath.Join(pd.ResearchDir(), InterviewsFile)
}

// ValidationResultsFile returns the path to research/VALIDATION_RESULTS.md
func (pd *PathDefaults) ValidationResultsFile() string {
	return filepath.Join(pd.ResearchDir(), ValidationResultsFile)
}

// InsightsFile returns the path to research/INSIGHTS.md
func (pd *PathDefaults) InsightsFile() string {
	return filepath.Join(pd.ResearchDir(), InsightsFile)
}

// PromptsDir returns the directory holding the copied prompts
func (pd *PathDefaults) PromptsDir() string {
	return filepath.Join(pd.JeffDir, PromptsDirName)
}

// IssuesDir returns the directory reserved for issue drafts
func (pd *PathDefaults) IssuesDir() string {
	return filepath.Join(pd.JeffDir, IssuesDirName)
}

// Subdirectories lists the directories created inside .jeff
func (pd *PathDefaults) Subdirectories() []string {
	return []string{pd.PromptsDir(), pd.ResearchDir(), pd.IssuesDir()}
}
