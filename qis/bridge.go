// Package qis binds the quantum instruction set operators of a program to a
// simulator and an identifier map.
package qis

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/statevec"
)

// Engine is the simulator an operator acts on.
type Engine interface {
	ApplyGate(target int, m statevec.Matrix) error
	ApplyCNOT(control, target int) error
	ApplyCZ(control, target int) error
	ApplySWAP(a, b int) error
	ApplyRX(target int, theta float64) error
	ApplyRY(target int, theta float64) error
	ApplyRZ(target int, theta float64) error
	Measure(target int) (bool, error)
	Reset(target int) error
}

// Memory maps handles to indices and stores measurement outcomes.
type Memory interface {
	QubitIndex(handle uint64) int
	RecordOutcome(handle uint64, value bool)
	ReadOutcome(handle uint64) bool
}

// Value is the return of an operator. Valid is false for operators that
// return nothing.
type Value struct {
	Bool  bool
	Valid bool
}

func boolValue(b bool) Value {
	return Value{Bool: b, Valid: true}
}

// Bridge dispatches operator calls to the engine and the memory.
type Bridge struct {
	engine Engine
	mem    Memory

	records     []bool
	unsupported int
}

// NewBridge creates a bridge over an engine and a memory.
func NewBridge(engine Engine, mem Memory) *Bridge {
	return &Bridge{
		engine: engine,
		mem:    mem,
	}
}

// Call executes one operator with its decoded argument payloads. Unknown
// operators are skipped with a warning and do not fail the run.
func (b *Bridge) Call(op string, args []uint64) (Value, error) {
	spec, ok := opTable[op]
	if !ok {
		b.unsupported++
		slog.Warn("unsupported QIS function", "Op", op)

		return Value{}, nil
	}

	if len(args) < spec.minArgs {
		return Value{}, fmt.Errorf("%w: %s expects %d operands, got %d",
			qir.ErrInstruction, op, spec.minArgs, len(args))
	}

	v, err := spec.run(b, args)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s: %w", qir.ErrInstruction, op, err)
	}

	qir.Trace("Call", "Op", op, "Args", args, "Value", v.Bool, "Valid", v.Valid)

	return v, nil
}

// Records returns the outcomes emitted by result_record_output, in order.
func (b *Bridge) Records() []bool {
	out := make([]bool, len(b.records))
	copy(out, b.records)

	return out
}

// Unsupported returns how many calls named an unknown operator.
func (b *Bridge) Unsupported() int {
	return b.unsupported
}

func (b *Bridge) qubit(handle uint64) int {
	return b.mem.QubitIndex(handle)
}
