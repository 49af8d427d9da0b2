package qir

import "errors"

// Error kinds reported by a run. Callers match them with errors.Is.
var (
	// ErrParse reports a program construct that cannot be resolved, such as a
	// branch to a label that does not exist.
	ErrParse = errors.New("parse error")

	// ErrInstruction reports an instruction that cannot be carried out on the
	// simulator, such as a qubit handle mapped outside the configured range.
	ErrInstruction = errors.New("instruction error")

	// ErrIO reports that the program text could not be read.
	ErrIO = errors.New("io error")
)
