package statevec

import "math/rand/v2"

// MaxQubits bounds the size of a simulator. The state vector holds 2^n
// complex128 values.
const MaxQubits = 30

// Builder can create simulators.
type Builder struct {
	numQubits int
	rng       *rand.Rand
}

// NewBuilder returns a builder for a 1-qubit simulator with a randomly seeded
// source.
func NewBuilder() Builder {
	return Builder{numQubits: 1}
}

// WithQubits sets the number of qubits.
func (b Builder) WithQubits(n int) Builder {
	b.numQubits = n
	return b
}

// WithRand sets the random source used by measurement.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// WithSeed seeds a dedicated random source.
func (b Builder) WithSeed(seed uint64) Builder {
	b.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return b
}

// Build creates a simulator in the ground state |0...0>.
func (b Builder) Build() *Simulator {
	if b.numQubits < 1 || b.numQubits > MaxQubits {
		panic("qubit count must be between 1 and 30")
	}

	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	amps := make([]complex128, 1<<b.numQubits)
	amps[0] = 1

	return &Simulator{
		amps:      amps,
		numQubits: b.numQubits,
		rng:       rng,
	}
}
