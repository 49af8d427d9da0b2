package qis

import (
	"maps"
	"math"
	"slices"

	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/statevec"
)

type opSpec struct {
	minArgs int
	qubits  []int // operand positions holding qubit handles
	run     func(b *Bridge, args []uint64) (Value, error)
}

var opTable map[string]opSpec

func body(name string) string {
	return qir.QISPrefix + name + "__body"
}

var (
	oneQubit  = []int{0}
	twoQubits = []int{0, 1}
	angleThen = []int{1}
)

func init() {
	opTable = map[string]opSpec{
		body("cnot"):        {2, twoQubits, runCNOT},
		body("cx"):          {2, twoQubits, runCNOT},
		body("cz"):          {2, twoQubits, runCZ},
		body("swap"):        {2, twoQubits, runSWAP},
		body("rx"):          {2, angleThen, rotation(Engine.ApplyRX)},
		body("ry"):          {2, angleThen, rotation(Engine.ApplyRY)},
		body("rz"):          {2, angleThen, rotation(Engine.ApplyRZ)},
		body("mz"):          {1, oneQubit, runMeasure},
		body("m"):           {1, oneQubit, runMeasure},
		body("mresetz"):     {1, oneQubit, runMeasureReset},
		body("reset"):       {1, oneQubit, runReset},
		body("read_result"): {1, nil, runReadResult},

		qir.RTPrefix + "read_result":          {1, nil, runReadResult},
		qir.RTPrefix + "result_equal":         {2, nil, runResultEqual},
		qir.RTPrefix + "result_record_output": {1, nil, runRecordOutput},
	}

	gates := map[string]statevec.Matrix{
		body("h"): statevec.Hadamard,
		body("x"): statevec.PauliX,
		body("y"): statevec.PauliY,
		body("z"): statevec.PauliZ,
		body("s"): statevec.PhaseS,
		body("t"): statevec.GateT,

		qir.QISPrefix + "s__adj": statevec.PhaseSAdj,
		qir.QISPrefix + "t__adj": statevec.GateTAdj,
	}
	for op, m := range gates {
		opTable[op] = opSpec{1, oneQubit, gate(m)}
	}

	for _, op := range []string{
		"initialize",
		"tuple_record_output",
		"array_record_output",
		"bool_record_output",
		"int_record_output",
		"double_record_output",
	} {
		opTable[qir.RTPrefix+op] = opSpec{0, nil, runNop}
	}
}

// IsSupported reports whether the bridge knows an operator.
func IsSupported(op string) bool {
	_, ok := opTable[op]
	return ok
}

// MinArgs returns the number of operands an operator requires.
func MinArgs(op string) (int, bool) {
	spec, ok := opTable[op]
	return spec.minArgs, ok
}

// QubitOperands returns the operand positions that hold qubit handles.
func QubitOperands(op string) []int {
	return slices.Clone(opTable[op].qubits)
}

// Operators lists every supported operator name in sorted order.
func Operators() []string {
	return slices.Sorted(maps.Keys(opTable))
}

func gate(m statevec.Matrix) func(*Bridge, []uint64) (Value, error) {
	return func(b *Bridge, args []uint64) (Value, error) {
		return Value{}, b.engine.ApplyGate(b.qubit(args[0]), m)
	}
}

// rotation reads the angle from the IEEE-754 bits of the first operand.
func rotation(
	apply func(Engine, int, float64) error,
) func(*Bridge, []uint64) (Value, error) {
	return func(b *Bridge, args []uint64) (Value, error) {
		theta := math.Float64frombits(args[0])
		return Value{}, apply(b.engine, b.qubit(args[1]), theta)
	}
}

func runCNOT(b *Bridge, args []uint64) (Value, error) {
	return Value{}, b.engine.ApplyCNOT(b.qubit(args[0]), b.qubit(args[1]))
}

func runCZ(b *Bridge, args []uint64) (Value, error) {
	return Value{}, b.engine.ApplyCZ(b.qubit(args[0]), b.qubit(args[1]))
}

func runSWAP(b *Bridge, args []uint64) (Value, error) {
	return Value{}, b.engine.ApplySWAP(b.qubit(args[0]), b.qubit(args[1]))
}

// runMeasure measures a qubit. When a result handle follows the qubit the
// outcome is also recorded there for later read_result calls.
func runMeasure(b *Bridge, args []uint64) (Value, error) {
	outcome, err := b.engine.Measure(b.qubit(args[0]))
	if err != nil {
		return Value{}, err
	}

	if len(args) > 1 {
		b.mem.RecordOutcome(args[1], outcome)
	}

	return boolValue(outcome), nil
}

func runMeasureReset(b *Bridge, args []uint64) (Value, error) {
	v, err := runMeasure(b, args)
	if err != nil {
		return Value{}, err
	}

	if v.Bool {
		if err := b.engine.ApplyGate(b.qubit(args[0]), statevec.PauliX); err != nil {
			return Value{}, err
		}
	}

	return v, nil
}

func runReset(b *Bridge, args []uint64) (Value, error) {
	return Value{}, b.engine.Reset(b.qubit(args[0]))
}

func runReadResult(b *Bridge, args []uint64) (Value, error) {
	return boolValue(b.mem.ReadOutcome(args[0])), nil
}

func runResultEqual(b *Bridge, args []uint64) (Value, error) {
	return boolValue(b.mem.ReadOutcome(args[0]) == b.mem.ReadOutcome(args[1])), nil
}

func runRecordOutput(b *Bridge, args []uint64) (Value, error) {
	b.records = append(b.records, b.mem.ReadOutcome(args[0]))
	return Value{}, nil
}

func runNop(_ *Bridge, _ []uint64) (Value, error) {
	return Value{}, nil
}
