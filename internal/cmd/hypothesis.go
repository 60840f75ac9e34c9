package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/jeff/internal/parser"
	"github.com/felixgeelhaar/jeff/internal/project"
	"github.com/felixgeelhaar/jeff/internal/prompts"
	"github.com/felixgeelhaar/jeff/internal/ux"
)

var (
	hypothesisList     bool
	hypothesisValidate string
	hypothesisFormat   string
)

var hypothesisCmd = &cobra.Command{
	Use:   "hypothesis",
	Short: "Print the prompt for hypothesis generation",
	Long: `Print the hypothesis prompt followed by the current HYPOTHESES.md.

Use --list to see the current hypotheses with their status.
Use --validate ID to get a validation planning prompt for one hypothesis.

Examples:
  jeff hypothesis
  jeff hypothesis --list
  jeff hypothesis --list --format json
  jeff hypothesis --validate H2`,
	Args: cobra.NoArgs,
	RunE: runHypothesis,
}

func init() {
	hypothesisCmd.Flags().BoolVar(&hypothesisList, "list", false, "list current hypotheses")
	hypothesisCmd.Flags().StringVar(&hypothesisValidate, "validate", "", "print the validation planning prompt for hypothesis `ID`")
	hypothesisCmd.Flags().StringVar(&hypothesisFormat, "format", ux.FormatText, ux.FormatUsage("--list"))

	rootCmd.AddCommand(hypothesisCmd)
}

func runHypothesis(cmd *cobra.Command, args []string) error {
	p, err := openProject()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case hypothesisList:
		content, err := project.RequireArtifact(p.HypothesesFile())
		if err != nil {
			return err
		}
		formatter, err := ux.NewFormatter(hypothesisFormat, &ux.FormatterOptions{Writer: out})
		if err != nil {
			return err
		}
		listing := hypothesisListing(parser.ParseHypotheses(content))
		if listing == nil {
			listing = hypothesisListing{}
		}
		return formatter.Format(listing)

	case hypothesisValidate != "":
		content, err := project.RequireArtifact(p.HypothesesFile())
		if err != nil {
			return err
		}
		h, err := parser.FindHypothesis(content, hypothesisValidate)
		if err != nil {
			return err
		}
		prompt, err := prompts.Get(prompts.HypothesisValidate)
		if err != nil {
			return err
		}
		writeValidationPlan(out, h, prompt)
		return nil

	default:
		prompt, err := prompts.Get(prompts.Hypothesis)
		if err != nil {
			return err
		}
		return printPromptWithArtifact(out, prompt, "Current Hypotheses", p.HypothesesFile())
	}
}

// hypothesisListing is the --list payload. JSON and YAML render the
// records; text renders the human listing.
type hypothesisListing []parser.Hypothesis

func (l hypothesisListing) RenderText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No hypotheses found.")
		return err
	}

	var b strings.Builder
	b.WriteString("Current Hypotheses:\n\n")
	for _, h := range l {
		fmt.Fprintf(&b, "  %s: %s\n", h.ID, h.Name)
		fmt.Fprintf(&b, "      Status: %s\n\n", h.Status)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeValidationPlan(w io.Writer, h parser.Hypothesis, prompt string) {
	fmt.Fprintf(w, "# Validation Planning: %s - %s\n\n", h.ID, h.Name)
	fmt.Fprint(w, "## Current Hypothesis\n\n")
	fmt.Fprintf(w, "### %s: %s\n", h.ID, h.Name)
	fmt.Fprintln(w, strings.TrimSpace(h.Body))
	fmt.Fprint(w, "\n---\n\n")
	fmt.Fprint(w, "## Validation Prompt\n\n")
	fmt.Fprintln(w, prompt)
}
