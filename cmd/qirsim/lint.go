package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/verify"
)

var errLintFailed = errors.New("lint found issues")

var (
	structColor      = color.New(color.FgRed, color.Bold)
	unsupportedColor = color.New(color.FgYellow, color.Bold)
	rangeColor       = color.New(color.FgMagenta, color.Bold)
	okColor          = color.New(color.FgGreen)
)

var lintCmd = &cobra.Command{
	Use:   "lint <file.ll>",
	Short: "Check a QIR program without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  lintProgram,
}

func init() {
	lintCmd.Flags().Bool("report", false, "also run the program and print a full verification report")
	lintCmd.Flags().String("save", "", "write the verification report to a file")
}

func lintProgram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lines, err := qir.ReadLinesFile(args[0])
	if err != nil {
		return err
	}

	arch := &verify.ArchInfo{Qubits: cfg.Qubits}
	out := cmd.OutOrStdout()

	full, _ := cmd.Flags().GetBool("report")
	save, _ := cmd.Flags().GetString("save")
	if full || save != "" {
		r := verify.GenerateReport(cmd.Context(), lines, arch, cfg.MaxSteps)
		if full {
			r.WriteReport(out)
		}
		if save != "" {
			if err := r.SaveReportToFile(save); err != nil {
				return err
			}
		}
		if !r.Passed() {
			return errLintFailed
		}
		return nil
	}

	issues := verify.RunLint(lines, arch)
	printIssues(out, issues)
	if len(issues) > 0 {
		return errLintFailed
	}

	return nil
}

func printIssues(w io.Writer, issues []verify.Issue) {
	if len(issues) == 0 {
		okColor.Fprintln(w, "no issues")
		return
	}

	for _, issue := range issues {
		c := structColor
		switch issue.Type {
		case verify.IssueUnsupported:
			c = unsupportedColor
		case verify.IssueRange:
			c = rangeColor
		}

		c.Fprintf(w, "%-11s", issue.Type)
		fmt.Fprintf(w, " line %d: %s\n", issue.Line, issue.Message)
	}
}
