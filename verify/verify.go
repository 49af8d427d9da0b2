// Package verify checks programs before they are run.
//
// Verification has two stages:
//
//  1. Static lint (lint.go): structural checks on the program text.
//     - STRUCT: duplicate labels, branches to undefined labels, calls with
//     too few operands
//     - UNSUPPORTED: operators the simulator does not implement and quantum
//     calls it cannot decode
//     - RANGE: more distinct qubit handles than the register holds
//
//  2. Functional run (report.go): one seeded run of the program on the
//     simulator, reporting the first fatal error if there is one.
//
// Unsupported operators are not fatal at run time; they are skipped with a
// warning. Lint surfaces them ahead of time.
package verify

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueStruct      IssueType = "STRUCT"      // Label or operand structure error
	IssueUnsupported IssueType = "UNSUPPORTED" // Operator that will be skipped
	IssueRange       IssueType = "RANGE"       // Handles exceeding the register
)

// Issue represents a single lint issue.
type Issue struct {
	Type    IssueType              // STRUCT, UNSUPPORTED or RANGE
	Line    int                    // 1-based line number, 0 if not applicable
	Op      string                 // Operator name, empty if not applicable
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// ArchInfo describes the simulated machine.
type ArchInfo struct {
	Qubits int // Number of qubits in the register
}
