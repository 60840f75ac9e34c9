package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/prompts"
)

var mapShow bool

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the prompt for creating or updating the story map",
	Long: `Print the story mapping prompt followed by the current STORY_MAP.md.

Use --show to display only the current story map.`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&mapShow, "show", false, "display the current story map")

	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}

	if mapShow {
		return showArtifact(cmd.OutOrStdout(), p.StoryMapFile())
	}

	prompt, err := prompts.Get(prompts.StoryMap)
	if err != nil {
		return err
	}
	return printPromptWithArtifact(cmd.OutOrStdout(), prompt, "Current Story Map", p.StoryMapFile())
}
