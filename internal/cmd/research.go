package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/prompts"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Print prompts for research capture",
	Long: `Print prompts for capturing user research.

Subcommands:
  interview  Prompt for capturing interview notes
  insight    Prompt for extracting insights from research`,
}

var researchInterviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Prompt for capturing interview notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		return printResearch(cmd, prompts.ResearchInterview, "Current Interview Notes", p.InterviewsFile())
	},
}

var researchInsightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Prompt for extracting insights from research",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		return printResearch(cmd, prompts.ResearchInsight, "Current Insights", p.InsightsFile())
	},
}

func init() {
	researchCmd.AddCommand(researchInterviewCmd)
	researchCmd.AddCommand(researchInsightCmd)

	rootCmd.AddCommand(researchCmd)
}

func printResearch(cmd *cobra.Command, name, heading, path string) error {
	prompt, err := prompts.Get(name)
	if err != nil {
		return err
	}
	return printPromptWithArtifact(cmd.OutOrStdout(), prompt, heading, path)
}
