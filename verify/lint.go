package verify

import (
	"fmt"
	"strings"

	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/qis"
)

// RunLint performs static checks on the lines of a program and returns the
// issues found, or an empty list.
func RunLint(lines []string, arch *ArchInfo) []Issue {
	insts := make([]qir.Instruction, len(lines))
	for i, line := range lines {
		insts[i] = qir.Decode(line)
	}

	var issues []Issue

	labels := make(map[string]int)
	for i, inst := range insts {
		if inst.Kind != qir.KindLabel {
			continue
		}

		if prev, ok := labels[inst.Label]; ok {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Line:    i + 1,
				Message: fmt.Sprintf("label %q already defined at line %d", inst.Label, prev+1),
				Details: map[string]interface{}{"label": inst.Label, "first": prev + 1},
			})
			continue
		}
		labels[inst.Label] = i
	}

	issues = append(issues, checkBranches(insts, labels)...)
	issues = append(issues, checkCalls(insts)...)
	issues = append(issues, checkQubitRange(insts, arch)...)

	return issues
}

func checkBranches(insts []qir.Instruction, labels map[string]int) []Issue {
	var issues []Issue

	for i, inst := range insts {
		var targets []string
		switch inst.Kind {
		case qir.KindCondBranch:
			targets = []string{inst.Then, inst.Else}
		case qir.KindUncondBranch:
			targets = []string{inst.Target}
		default:
			continue
		}

		for _, target := range targets {
			if _, ok := labels[target]; ok {
				continue
			}

			issues = append(issues, Issue{
				Type:    IssueStruct,
				Line:    i + 1,
				Message: fmt.Sprintf("branch to undefined label %q", target),
				Details: map[string]interface{}{"label": target},
			})
		}
	}

	return issues
}

func checkCalls(insts []qir.Instruction) []Issue {
	var issues []Issue

	for i, inst := range insts {
		if inst.Kind != qir.KindCall {
			if looksLikeQuantumCall(inst.Raw) {
				issues = append(issues, Issue{
					Type:    IssueUnsupported,
					Line:    i + 1,
					Message: "quantum call could not be decoded and will be ignored",
					Details: map[string]interface{}{"text": strings.TrimSpace(inst.Raw)},
				})
			}
			continue
		}

		want, ok := qis.MinArgs(inst.Op)
		if !ok {
			issues = append(issues, Issue{
				Type:    IssueUnsupported,
				Line:    i + 1,
				Op:      inst.Op,
				Message: fmt.Sprintf("operator %s is not supported and will be skipped", inst.Op),
			})
			continue
		}

		if got := len(qir.SplitArgs(inst.Args)); got < want {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Line:    i + 1,
				Op:      inst.Op,
				Message: fmt.Sprintf("operator %s needs %d operands, has %d", inst.Op, want, got),
				Details: map[string]interface{}{"want": want, "got": got},
			})
		}
	}

	return issues
}

// looksLikeQuantumCall matches call lines the decoder rejected, for example
// because of an unknown return type. Declarations are not calls.
func looksLikeQuantumCall(raw string) bool {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "declare") || strings.HasPrefix(text, ";") {
		return false
	}

	return strings.Contains(text, "call ") &&
		(strings.Contains(text, "@"+qir.QISPrefix) || strings.Contains(text, "@"+qir.RTPrefix))
}

// checkQubitRange counts distinct qubit handles in first-use order, the
// order in which they are bound to simulator qubits.
func checkQubitRange(insts []qir.Instruction, arch *ArchInfo) []Issue {
	if arch == nil || arch.Qubits <= 0 {
		return nil
	}

	var issues []Issue
	seen := make(map[uint64]bool)

	for i, inst := range insts {
		if inst.Kind != qir.KindCall {
			continue
		}

		args := qir.SplitArgs(inst.Args)
		for _, pos := range qis.QubitOperands(inst.Op) {
			if pos >= len(args) {
				continue
			}

			handle := qir.DecodeArg(args[pos])
			if seen[handle] {
				continue
			}
			seen[handle] = true

			if len(seen) > arch.Qubits {
				issues = append(issues, Issue{
					Type: IssueRange,
					Line: i + 1,
					Op:   inst.Op,
					Message: fmt.Sprintf("qubit handle %d is qubit #%d, the register has %d",
						handle, len(seen), arch.Qubits),
					Details: map[string]interface{}{"handle": handle, "qubits": arch.Qubits},
				})
			}
		}
	}

	return issues
}
