// Package api defines the driver API for running programs on the simulator.
package api

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"fortio.org/safecast"
	"github.com/sarchlab/akita/v4/sim"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/qirsim/core"
	"github.com/sarchlab/qirsim/interp"
	"github.com/sarchlab/qirsim/memory"
	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/qis"
	"github.com/sarchlab/qirsim/report"
	"github.com/sarchlab/qirsim/statevec"
)

const maxQubits = statevec.MaxQubits

// ErrNoProgram is returned when a driver runs before a program was loaded.
var ErrNoProgram = errors.New("no program loaded")

// Driver loads a program and runs it on fresh simulators.
type Driver interface {
	// Load reads the program stored at path.
	Load(path string) error

	// LoadLines builds the program from already split lines.
	LoadLines(lines []string) error

	// LoadProgram uses an already built program.
	LoadProgram(program *qir.Program)

	// Program returns the loaded program, nil if none.
	Program() *qir.Program

	// Run executes the program once on a simulator in the ground state.
	Run(ctx context.Context) (*Result, error)

	// RunShots executes the program the given number of times, every shot
	// on its own simulator, and counts the measurement records.
	RunShots(ctx context.Context, shots int) (*ShotResult, error)
}

// Result is the outcome of one run.
type Result struct {
	NumQubits    int                `yaml:"qubits" msgpack:"qubits" cbor:"qubits"`
	Steps        int                `yaml:"steps" msgpack:"steps" cbor:"steps"`
	Distribution map[string]float64 `yaml:"distribution" msgpack:"distribution" cbor:"distribution"`
	Outcomes     map[int]bool       `yaml:"outcomes" msgpack:"outcomes" cbor:"outcomes"`
	Records      []bool             `yaml:"records,omitempty" msgpack:"records,omitempty" cbor:"records,omitempty"`
	Vars         map[string]bool    `yaml:"vars" msgpack:"vars" cbor:"vars"`
	Unsupported  int                `yaml:"unsupported" msgpack:"unsupported" cbor:"unsupported"`

	// State is the final state vector.
	State []complex128 `yaml:"-" msgpack:"-" cbor:"-"`
}

// Key returns the bit string a shot histogram counts this run under. Output
// records take precedence over the raw result slots.
func (r *Result) Key() string {
	if len(r.Records) > 0 {
		return report.RecordKey(r.Records)
	}

	return report.OutcomeKey(r.Outcomes)
}

// ShotResult is the outcome of repeated runs.
type ShotResult struct {
	Histogram *report.Histogram `yaml:"histogram" msgpack:"histogram" cbor:"histogram"`
	Shots     int               `yaml:"shots" msgpack:"shots" cbor:"shots"`
	Steps     int               `yaml:"steps" msgpack:"steps" cbor:"steps"`
}

type driverImpl struct {
	name    string
	cfg     DriverBuilder
	program *qir.Program
}

func (d *driverImpl) Load(path string) error {
	p, err := qir.LoadProgramFile(path)
	if err != nil {
		return err
	}

	d.program = p
	qir.Trace("Load", "Driver", d.name, "Path", path, "Lines", p.Len())

	return nil
}

func (d *driverImpl) LoadLines(lines []string) error {
	p, err := qir.NewProgram(lines)
	if err != nil {
		return err
	}

	d.program = p

	return nil
}

func (d *driverImpl) LoadProgram(program *qir.Program) {
	d.program = program
}

func (d *driverImpl) Program() *qir.Program {
	return d.program
}

func (d *driverImpl) Run(ctx context.Context) (*Result, error) {
	if d.program == nil {
		return nil, ErrNoProgram
	}

	return d.runOnce(ctx, d.newRand(0), d.name)
}

func (d *driverImpl) RunShots(ctx context.Context, shots int) (*ShotResult, error) {
	if d.program == nil {
		return nil, ErrNoProgram
	}

	if shots < 1 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}

	// A shot keeps only its histogram key and step count; its state vector
	// is released when the shot ends.
	keys := make([]string, shots)
	steps := make([]int, shots)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.cfg.jobs, shots))

	for i := range shots {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			stream, err := safecast.Conv[uint64](i)
			if err != nil {
				return err
			}

			res, err := d.runOnce(gctx, d.newRand(stream),
				fmt.Sprintf("%s.Shot[%d]", d.name, i))
			if err != nil {
				return fmt.Errorf("shot %d: %w", i, err)
			}

			keys[i] = res.Key()
			steps[i] = res.Steps

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ShotResult{
		Histogram: report.NewHistogram(),
		Shots:     shots,
	}
	for i, key := range keys {
		out.Histogram.Add(key)
		out.Steps += steps[i]
	}

	return out, nil
}

func (d *driverImpl) newRand(stream uint64) *rand.Rand {
	if d.cfg.seeded {
		return rand.New(rand.NewPCG(d.cfg.seed, stream))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (d *driverImpl) runOnce(
	ctx context.Context,
	rng *rand.Rand,
	name string,
) (*Result, error) {
	sv := statevec.NewBuilder().
		WithQubits(d.cfg.qubits).
		WithRand(rng).
		Build()
	mem := memory.New()
	bridge := qis.NewBridge(sv, mem)
	it := interp.New(d.program, bridge, interp.WithMaxSteps(d.cfg.maxSteps))

	if err := d.execute(ctx, it, name); err != nil {
		return nil, err
	}

	state := sv.Snapshot()

	return &Result{
		NumQubits:    d.cfg.qubits,
		Steps:        it.Steps(),
		Distribution: report.Distribution(state, d.cfg.qubits, d.cfg.threshold),
		Outcomes:     mem.Outcomes(),
		Records:      bridge.Records(),
		Vars:         it.Vars(),
		Unsupported:  bridge.Unsupported(),
		State:        state,
	}, nil
}

func (d *driverImpl) execute(ctx context.Context, it *interp.Interpreter, name string) error {
	if !d.cfg.tick {
		return it.Run(ctx)
	}

	engine := sim.NewSerialEngine()
	c := core.NewBuilder().
		WithEngine(engine).
		WithFreq(d.cfg.freq).
		Build(name + ".Core")
	c.MapProgram(it)

	return c.Run(ctx)
}

// RunQIR loads the program at path, runs it once on the given number of
// qubits and returns the probability of every basis state above 1e-10.
func RunQIR(path string, qubits int) (map[string]float64, error) {
	if qubits < 1 || qubits > maxQubits {
		return nil, fmt.Errorf("%w: qubit count %d out of range",
			qir.ErrInstruction, qubits)
	}

	d := NewDriverBuilder().
		WithQubits(qubits).
		WithThreshold(report.BulkThreshold).
		Build("RunQIR")
	if err := d.Load(path); err != nil {
		return nil, err
	}

	res, err := d.Run(context.Background())
	if err != nil {
		return nil, err
	}

	return res.Distribution, nil
}
