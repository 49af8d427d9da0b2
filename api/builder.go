package api

import (
	"runtime"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/qirsim/report"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	qubits    int
	seed      uint64
	seeded    bool
	maxSteps  int
	jobs      int
	threshold float64
	tick      bool
	freq      sim.Freq
}

// NewDriverBuilder returns a builder with the default settings: 10 qubits,
// process-random seeding and one job per CPU.
func NewDriverBuilder() DriverBuilder {
	return DriverBuilder{
		qubits:    10,
		jobs:      runtime.GOMAXPROCS(0),
		threshold: report.BulkThreshold,
		freq:      1 * sim.GHz,
	}
}

// WithQubits sets the size of the simulated register.
func (b DriverBuilder) WithQubits(n int) DriverBuilder {
	b.qubits = n
	return b
}

// WithSeed makes runs reproducible. Shot i of a seeded driver draws from
// stream i of the seed.
func (b DriverBuilder) WithSeed(seed uint64) DriverBuilder {
	b.seed = seed
	b.seeded = true
	return b
}

// WithMaxSteps bounds the number of lines a run may execute.
func (b DriverBuilder) WithMaxSteps(n int) DriverBuilder {
	b.maxSteps = n
	return b
}

// WithJobs sets how many shots run at the same time.
func (b DriverBuilder) WithJobs(n int) DriverBuilder {
	b.jobs = n
	return b
}

// WithThreshold sets the probability cut-off of result distributions.
func (b DriverBuilder) WithThreshold(p float64) DriverBuilder {
	b.threshold = p
	return b
}

// WithTickEngine runs programs on an akita engine, one line per cycle.
func (b DriverBuilder) WithTickEngine(tick bool) DriverBuilder {
	b.tick = tick
	return b
}

// WithFreq sets the frequency of the tick engine core.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.qubits < 1 || b.qubits > maxQubits {
		panic("driver qubit count out of range")
	}

	if b.jobs < 1 {
		b.jobs = 1
	}

	return &driverImpl{
		name: name,
		cfg:  b,
	}
}
