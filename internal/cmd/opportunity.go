package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/prompts"
)

var opportunityShow bool

var opportunityCmd = &cobra.Command{
	Use:   "opportunity",
	Short: "Print the prompt for opportunity solution tree work",
	Long: `Print the opportunity solution tree prompt followed by the current
OPPORTUNITIES.md.

Use --show to display only the current opportunity solution tree.`,
	Args: cobra.NoArgs,
	RunE: runOpportunity,
}

func init() {
	opportunityCmd.Flags().BoolVar(&opportunityShow, "show", false, "display the current opportunity solution tree")

	rootCmd.AddCommand(opportunityCmd)
}

func runOpportunity(cmd *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}

	if opportunityShow {
		return showArtifact(cmd.OutOrStdout(), p.OpportunitiesFile())
	}

	prompt, err := prompts.Get(prompts.Opportunity)
	if err != nil {
		return err
	}
	return printPromptWithArtifact(cmd.OutOrStdout(), prompt, "Current Opportunity Solution Tree", p.OpportunitiesFile())
}
