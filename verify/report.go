package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/qirsim/api"
	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/report"
	"github.com/sarchlab/qirsim/statevec"
)

// VerificationReport represents a complete verification report.
type VerificationReport struct {
	LineCount         int
	LintIssues        []Issue
	StructIssues      []Issue
	UnsupportedIssues []Issue
	RangeIssues       []Issue
	SimulationErr     error
	SimulationOK      bool
	Arch              *ArchInfo
	Result            *api.Result
}

// GenerateReport runs lint and one seeded functional run, and returns the
// report.
func GenerateReport(
	ctx context.Context,
	lines []string,
	arch *ArchInfo,
	maxSteps int,
) *VerificationReport {
	r := &VerificationReport{
		LineCount: len(lines),
		Arch:      arch,
	}

	r.LintIssues = RunLint(lines, arch)
	for _, issue := range r.LintIssues {
		switch issue.Type {
		case IssueStruct:
			r.StructIssues = append(r.StructIssues, issue)
		case IssueUnsupported:
			r.UnsupportedIssues = append(r.UnsupportedIssues, issue)
		case IssueRange:
			r.RangeIssues = append(r.RangeIssues, issue)
		}
	}

	if arch == nil || arch.Qubits < 1 || arch.Qubits > statevec.MaxQubits {
		r.SimulationErr = fmt.Errorf("%w: register of %d qubits, want 1 to %d",
			qir.ErrInstruction, r.qubits(), statevec.MaxQubits)
		return r
	}

	driver := api.NewDriverBuilder().
		WithQubits(arch.Qubits).
		WithSeed(1).
		WithMaxSteps(maxSteps).
		Build("Verify")

	if err := driver.LoadLines(lines); err != nil {
		r.SimulationErr = err
		return r
	}

	r.Result, r.SimulationErr = driver.Run(ctx)
	r.SimulationOK = r.SimulationErr == nil

	return r
}

func (r *VerificationReport) qubits() int {
	if r.Arch == nil {
		return 0
	}

	return r.Arch.Qubits
}

// Passed reports whether the program has no lint issues and ran to its end.
func (r *VerificationReport) Passed() bool {
	return len(r.LintIssues) == 0 && r.SimulationOK
}

// WriteReport writes a formatted report to a writer.
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "QIR PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nLoaded %d lines for a %d-qubit register\n", r.LineCount, r.qubits())

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues:\n\n", len(r.LintIssues))
		fmt.Fprintln(w, IssueTable(r.LintIssues))
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: FUNCTIONAL RUN")
	fmt.Fprintln(w, separator)

	if r.SimulationOK {
		fmt.Fprintf(w, "✓ Run completed in %d steps\n", r.Result.Steps)
		if err := report.WriteText(w, r.Result.Distribution); err != nil {
			fmt.Fprintf(w, "⚠ cannot print distribution: %v\n", err)
		}
	} else {
		fmt.Fprintf(w, "⚠ Run error: %v\n", r.SimulationErr)
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Lint Result: %d issues detected (%d STRUCT, %d UNSUPPORTED, %d RANGE)\n",
		len(r.LintIssues), len(r.StructIssues), len(r.UnsupportedIssues), len(r.RangeIssues))
	runStatus := "SUCCESS"
	if !r.SimulationOK {
		runStatus = "FAILED: " + r.SimulationErr.Error()
	}
	fmt.Fprintf(w, "Run Result: %s\n", runStatus)

	if r.Passed() {
		fmt.Fprintln(w, "✓ PROGRAM PASSED ALL CHECKS")
	}

	fmt.Fprintln(w)
}

// IssueTable renders issues as a table.
func IssueTable(issues []Issue) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Type", "Line", "Op", "Message"})

	for _, issue := range issues {
		line := "-"
		if issue.Line > 0 {
			line = fmt.Sprint(issue.Line)
		}
		t.AppendRow(table.Row{issue.Type, line, issue.Op, issue.Message})
	}

	return t.Render()
}

// SaveReportToFile saves the report to a file.
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)

	return nil
}
