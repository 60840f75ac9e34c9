package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/felixgeelhaar/jeff/internal/errors"
	"github.com/felixgeelhaar/jeff/internal/install"
	"github.com/felixgeelhaar/jeff/internal/log"
	"github.com/felixgeelhaar/jeff/internal/tui"
)

// newInstaller is replaced in tests.
var newInstaller = install.NewInstaller

// toolFlags holds one boolean per supported tool plus the scope flags.
type toolFlags struct {
	tools  map[string]*bool
	global bool
	local  bool
}

func (f *toolFlags) register(fs *pflag.FlagSet, verb string) {
	f.tools = make(map[string]*bool)
	for _, t := range install.Tools() {
		f.tools[t.Key] = fs.Bool(t.Key, false, fmt.Sprintf("%s %s", verb, t.Name))
	}
	fs.BoolVar(&f.global, "global", false, "all projects (per-user location)")
	fs.BoolVar(&f.local, "local", false, "current project only")
}

// selected returns the tool chosen by flag, or ok=false when none was
// given. More than one tool flag is an error.
func (f *toolFlags) selected() (install.Tool, bool, error) {
	var chosen []string
	for _, t := range install.Tools() {
		if *f.tools[t.Key] {
			chosen = append(chosen, t.Key)
		}
	}

	switch len(chosen) {
	case 0:
		return install.Tool{}, false, nil
	case 1:
		t, err := install.Lookup(chosen[0])
		return t, err == nil, err
	default:
		return install.Tool{}, false, errors.NewToolRequiredError("Specify only one tool")
	}
}

var (
	installFlags   toolFlags
	uninstallFlags toolFlags
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install jeff skills for an AI coding tool",
	Long: `Install jeff skills for an AI coding tool.

Without a tool flag jeff asks which tool to install for, and for tools that
support both scopes, where to install.

Supported tools:
  --claude      Claude Code (~/.claude/commands/jeff/ or ./.claude/commands/jeff/)
  --opencode    Opencode (~/.config/opencode/command/ or ./.opencode/command/)
  --cursor      Cursor (.cursorrules), local only
  --zed         Zed (.zed/settings.json), local only
  --conductor   Conductor (conductor.yaml), local only

Examples:
  jeff install --claude --global    Install for Claude Code globally
  jeff install --claude --local     Install for Claude Code locally
  jeff install --cursor             Install for Cursor
  jeff install                      Interactive mode`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall jeff skills from an AI coding tool",
	Long: `Uninstall jeff skills from an AI coding tool.

Only what jeff installed is removed; other commands, rules and settings are
left in place.

Examples:
  jeff uninstall --claude --global    Uninstall from Claude Code globally
  jeff uninstall --cursor             Uninstall from Cursor`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	installFlags.register(installCmd.Flags(), "install for")
	uninstallFlags.register(uninstallCmd.Flags(), "uninstall from")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := tui.NewStyles(out)

	tool, ok, err := installFlags.selected()
	if err != nil {
		return err
	}
	if !ok {
		if tool, err = selectTool(); err != nil {
			return err
		}
	}

	scope, err := install.ResolveScope(tool, installFlags.global, installFlags.local)
	if err != nil {
		return err
	}
	if !installFlags.global && !installFlags.local && !tool.SupportsGlobal() {
		fmt.Fprintf(out, "%s only supports local installation.\n", tool.Name)
	}

	installer, err := newInstaller()
	if err != nil {
		return err
	}

	if scope == install.ScopeUnset {
		if scope, err = selectScope(installer, tool); err != nil {
			return err
		}
	}

	target, err := installer.Target(tool, scope)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nInstalling jeff for %s %s...\n", tool.Name, scope)
	fmt.Fprintf(out, "Target: %s\n\n", target)

	report, err := installer.Install(tool, scope)
	if err != nil {
		return err
	}
	log.For("install").Info("installed jeff", "tool", tool.Key, "scope", scope.String(), "target", report.Target, "count", report.Count)

	fmt.Fprintln(out, styles.Check(report.Summary))
	writeInstallHint(out, styles, tool)
	return nil
}

func writeInstallHint(out io.Writer, styles tui.Styles, tool install.Tool) {
	hint := "jeff --help"
	verb := "Run"
	if tool.Kind == install.KindCommandDir || tool.Kind == install.KindFlatCommands {
		hint = "/jeff:help"
		verb = "Try"
	}
	fmt.Fprintf(out, "\n%s %s %s in %s.\n", styles.Success.Render("Done!"), verb, styles.Accent.Render(hint), tool.Name)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := tui.NewStyles(out)

	tool, ok, err := uninstallFlags.selected()
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewToolRequiredError("Please specify a tool (--claude, --opencode, etc.)")
	}

	scope, err := install.ResolveScope(tool, uninstallFlags.global, uninstallFlags.local)
	if err != nil {
		return err
	}
	if scope == install.ScopeUnset {
		return errors.NewScopeRequiredError()
	}

	installer, err := newInstaller()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nUninstalling jeff from %s %s...\n", tool.Name, scope)

	report, err := installer.Uninstall(tool, scope)
	if err != nil {
		return err
	}
	log.For("install").Info("uninstalled jeff", "tool", tool.Key, "scope", scope.String(), "target", report.Target, "count", report.Count)

	if report.Count == 0 {
		fmt.Fprintln(out, styles.Warn("Nothing to uninstall."))
		return nil
	}
	fmt.Fprintln(out, styles.Check(report.Summary))
	fmt.Fprintf(out, "\n%s Jeff has been uninstalled.\n", styles.Success.Render("Done!"))
	return nil
}

// selectTool asks which tool to install for.
func selectTool() (install.Tool, error) {
	if !shouldPrompt() {
		return install.Tool{}, errors.NewToolRequiredError("Please specify a tool (--claude, --opencode, etc.)")
	}

	tools := install.Tools()
	options := make([]tui.Option, len(tools))
	for i, t := range tools {
		options[i] = tui.Option{Label: t.Name, Value: t.Key}
	}

	key, err := promptSelect("Which AI tool would you like to install jeff for?", options)
	if err != nil {
		return install.Tool{}, err
	}
	return install.Lookup(key)
}

// selectScope asks where to install a tool that supports both scopes.
func selectScope(installer *install.Installer, tool install.Tool) (install.Scope, error) {
	if !shouldPrompt() {
		return install.ScopeUnset, errors.NewScopeRequiredError()
	}

	global, err := installer.Target(tool, install.ScopeGlobal)
	if err != nil {
		return install.ScopeUnset, err
	}

	choice, err := promptSelect("Where would you like to install?", []tui.Option{
		{Label: fmt.Sprintf("Global (%s)", global), Value: "global"},
		{Label: fmt.Sprintf("Local  (./%s)", tool.LocalPath), Value: "local"},
	})
	if err != nil {
		return install.ScopeUnset, err
	}
	if choice == "local" {
		return install.ScopeLocal, nil
	}
	return install.ScopeGlobal, nil
}
