// Package interp walks a program line by line and executes its control flow
// and operator calls.
package interp

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/qis"
)

// ErrStepLimit is returned by Run when the step budget runs out before the
// program ends.
var ErrStepLimit = errors.New("step limit reached")

// Dispatcher executes operator calls.
type Dispatcher interface {
	Call(op string, args []uint64) (qis.Value, error)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxSteps bounds the number of steps Run may take. Zero means no bound.
func WithMaxSteps(n int) Option {
	return func(it *Interpreter) {
		it.maxSteps = n
	}
}

// Interpreter holds the execution state of one run.
type Interpreter struct {
	program    *qir.Program
	dispatcher Dispatcher

	pc       int
	vars     map[string]bool
	steps    int
	maxSteps int
}

// New creates an interpreter positioned at the first line of the program.
func New(program *qir.Program, dispatcher Dispatcher, opts ...Option) *Interpreter {
	it := &Interpreter{
		program:    program,
		dispatcher: dispatcher,
		vars:       make(map[string]bool),
	}

	for _, opt := range opts {
		opt(it)
	}

	return it
}

// Done reports whether execution has run past the last line.
func (it *Interpreter) Done() bool {
	return it.pc < 0 || it.pc >= it.program.Len()
}

// Step executes the line at the program counter.
func (it *Interpreter) Step() error {
	if it.Done() {
		return nil
	}

	line := it.pc
	inst := it.program.At(line)
	it.steps++

	switch inst.Kind {
	case qir.KindCondBranch:
		label := inst.Else
		if it.vars[inst.Cond] {
			label = inst.Then
		}
		return it.jump(line, label)
	case qir.KindUncondBranch:
		return it.jump(line, inst.Target)
	case qir.KindCall:
		return it.call(line, inst)
	default:
		it.pc++
	}

	return nil
}

func (it *Interpreter) jump(line int, label string) error {
	target, err := it.program.Resolve(label)
	if err != nil {
		return fmt.Errorf("line %d: %w", line+1, err)
	}

	qir.Trace("Jump", "PC", line, "Label", label, "Target", target)
	it.pc = target

	return nil
}

func (it *Interpreter) call(line int, inst qir.Instruction) error {
	args := qir.DecodeArgs(inst.Args)

	v, err := it.dispatcher.Call(inst.Op, args)
	if err != nil {
		return fmt.Errorf("line %d: %w", line+1, err)
	}

	if inst.BindsResult() && v.Valid {
		it.vars[inst.Result] = v.Bool
	}

	it.pc++

	return nil
}

// Run steps until the program ends, the context is cancelled or the step
// budget is exhausted.
func (it *Interpreter) Run(ctx context.Context) error {
	for !it.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := it.Budget(); err != nil {
			return err
		}

		if err := it.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Budget returns ErrStepLimit once the configured number of steps has been
// taken.
func (it *Interpreter) Budget() error {
	if it.maxSteps > 0 && it.steps >= it.maxSteps {
		return fmt.Errorf("%w: %d steps at line %d",
			ErrStepLimit, it.steps, it.pc+1)
	}

	return nil
}

// PC returns the index of the next line to execute.
func (it *Interpreter) PC() int {
	return it.pc
}

// Steps returns how many lines have been executed.
func (it *Interpreter) Steps() int {
	return it.steps
}

// Var returns the value bound to a variable. Unbound variables read as false.
func (it *Interpreter) Var(name string) bool {
	return it.vars[name]
}

// Vars returns a copy of the variable table.
func (it *Interpreter) Vars() map[string]bool {
	out := make(map[string]bool, len(it.vars))
	for k, v := range it.vars {
		out[k] = v
	}

	return out
}
