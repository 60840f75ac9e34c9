package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/ux"
	"github.com/felixgeelhaar/jeff/internal/version"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "jeff",
	Short: "Specification CLI for product discovery",
	Long: `jeff generates product discovery artifacts that combine user story mapping,
hypothesis-driven validation and opportunity solution trees.

Artifacts live in .jeff/ as hand-edited markdown. Each workflow command prints
a prompt for your AI assistant together with the current artifact, and the
results can be turned into GitHub issues through the gh CLI.`,
	Version:       version.GetInfo().Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt. Errors carry recovery suggestions where jeff knows one.
func ExecuteContext(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return ux.EnhanceError(err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		fmt.Sprintf("log level: %s (default warn, env JEFF_LOG_LEVEL)", strings.Join(log.LevelNames(), ", ")))
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default text, env JEFF_LOG_FORMAT)")
	rootCmd.SetVersionTemplate("jeff {{.Version}}\n")
}
