package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/project"
	"github.com/felixgeelhaar/jeff/internal/tui"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

var (
	initName  string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new jeff project in the current directory",
	Long: `Initialize a new jeff project in the current directory.

Creates a .jeff/ directory with templates for story mapping, opportunity
solution trees, hypothesis tracking and tasks, research note files, and copies
of the workflow prompts.

Examples:
  # Initialize using the directory name as project name
  jeff init

  # Initialize with an explicit name
  jeff init --name checkout

  # Rewrite the templates of an existing project
  jeff init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "project name (defaults to directory name)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "rewrite the templates of an existing project")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	force := initForce
	if !force && isDir(filepath.Join(wd, ux.JeffDirName)) {
		if !shouldPrompt() {
			return errors.NewProjectInitializedError(wd)
		}
		ok, err := promptConfirm(fmt.Sprintf("%s already exists in %s. Rewrite the templates?", ux.JeffDirName, wd), false)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewProjectInitializedError(wd)
		}
		force = true
	}

	result, err := project.Scaffold(project.ScaffoldOptions{
		Root:  wd,
		Name:  initName,
		Force: force,
	})
	if err != nil {
		return err
	}
	log.DefaultLogger().Info("scaffolded project", "jeff_dir", result.JeffDir, "files", len(result.Files))

	out := cmd.OutOrStdout()
	styles := tui.NewStyles(out)

	fmt.Fprintf(out, "Initializing jeff project: %s\n", result.Name)
	fmt.Fprintln(out, styles.Check("Created .jeff/ with project structure"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render("Next steps:"))
	fmt.Fprintln(out, "  jeff map          # Get prompt for creating your story map")
	fmt.Fprintln(out, "  jeff opportunity  # Get prompt for opportunity solution tree")
	fmt.Fprintln(out, "  jeff hypothesis   # Get prompt for hypothesis tracking")
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
