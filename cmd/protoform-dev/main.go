package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "protoform-dev",
	Short: "Development tools for protoform project",
	Long: `protoform-dev provides project-specific development tools.

This tool focuses on protoform specific workflows:
- Documentation generation
- Project-specific automation`,
	SilenceUsage: true,
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Documentation generation tools",
}

var updateHelpCmd = &cobra.Command{
	Use:   "update-help",
	Short: "Update the --help output embedded in README.md",
	Long: `Regenerate the --help output of protoform and replace the block
between the help markers in README.md.

Examples:
  protoform-dev docs update-help
  protoform-dev docs update-help --check`,
	Args: cobra.NoArgs,
	RunE: updateHelp,
}

var (
	readmePath string
	checkOnly  bool
)

const (
	helpBeginMarker = "<!-- BEGIN HELP -->"
	helpEndMarker   = "<!-- END HELP -->"
)

var errHelpOutdated = errors.New("help output in README.md is outdated, run protoform-dev docs update-help")

func init() {
	updateHelpCmd.Flags().StringVar(&readmePath, "readme", "README.md", "Path to README.md")
	updateHelpCmd.Flags().BoolVar(&checkOnly, "check", false, "Fail if README.md is outdated instead of updating it")

	docsCmd.AddCommand(updateHelpCmd)
	rootCmd.AddCommand(docsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func updateHelp(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Generating --help output...")
	helpCmd := exec.Command("go", "run", ".", "--help")
	helpCmd.Stderr = cmd.ErrOrStderr()
	help, err := helpCmd.Output()
	if err != nil {
		return fmt.Errorf("failed to generate --help output: %w", err)
	}

	readme, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", readmePath, err)
	}

	updated, err := replaceHelpBlock(string(readme), string(help))
	if err != nil {
		return fmt.Errorf("%s: %w", readmePath, err)
	}

	if updated == string(readme) {
		fmt.Fprintf(out, "%s is up to date\n", readmePath)
		return nil
	}

	if checkOnly {
		return errHelpOutdated
	}

	if err := os.WriteFile(readmePath, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", readmePath, err)
	}
	fmt.Fprintf(out, "Updated %s\n", readmePath)
	return nil
}

// replaceHelpBlock replaces the content between the help markers of readme
// with help wrapped in a code block.
func replaceHelpBlock(readme, help string) (string, error) {
	before, rest, ok := strings.Cut(readme, helpBeginMarker)
	if !ok {
		return "", fmt.Errorf("marker %q not found", helpBeginMarker)
	}

	_, after, ok := strings.Cut(rest, helpEndMarker)
	if !ok {
		return "", fmt.Errorf("marker %q not found after %q", helpEndMarker, helpBeginMarker)
	}

	var b bytes.Buffer
	b.WriteString(before)
	b.WriteString(helpBeginMarker)
	b.WriteString("\n```\n")
	b.WriteString(strings.TrimRight(help, "\n"))
	b.WriteString("\n```\n")
	b.WriteString(helpEndMarker)
	b.WriteString(after)
	return b.String(), nil
}
