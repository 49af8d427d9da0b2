// Package statevec implements a dense state-vector quantum simulator.
//
// Basis index i encodes the computational basis state in which qubit k has the
// value of bit k of i. The amplitude slice is owned by the simulator; callers
// observe it only through Snapshot and Probabilities.
package statevec

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

// ErrQubitOutOfRange is returned when an operation names a qubit the
// simulator does not have.
var ErrQubitOutOfRange = errors.New("qubit index out of range")

// Below this branch probability measurement skips renormalization.
const collapseEpsilon = 1e-15

// Simulator holds the state vector of an n-qubit register.
type Simulator struct {
	amps      []complex128
	numQubits int
	rng       *rand.Rand
}

// NumQubits returns the number of qubits.
func (s *Simulator) NumQubits() int {
	return s.numQubits
}

// Snapshot returns a copy of the amplitudes.
func (s *Simulator) Snapshot() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// Probabilities returns the squared magnitude of every amplitude.
func (s *Simulator) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = norm2(a)
	}

	return probs
}

// Norm returns the sum of squared magnitudes, 1 for a valid state.
func (s *Simulator) Norm() float64 {
	sum := 0.0
	for _, a := range s.amps {
		sum += norm2(a)
	}

	return sum
}

func norm2(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}

func (s *Simulator) checkQubit(q int) error {
	if q < 0 || q >= s.numQubits {
		return fmt.Errorf("%w: qubit %d, simulator has %d",
			ErrQubitOutOfRange, q, s.numQubits)
	}

	return nil
}

// checkPair validates both qubits of a two-qubit gate. One qubit named
// twice is allowed: CNOT and SWAP then do nothing and CZ acts as Z.
func (s *Simulator) checkPair(a, b int) error {
	if err := s.checkQubit(a); err != nil {
		return err
	}

	return s.checkQubit(b)
}

// ApplyGate applies a single-qubit gate to the target qubit.
func (s *Simulator) ApplyGate(target int, m Matrix) error {
	if err := s.checkQubit(target); err != nil {
		return err
	}

	bit := 1 << target
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}

		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}

	return nil
}

// ApplyCNOT flips the target qubit where the control qubit is set.
func (s *Simulator) ApplyCNOT(control, target int) error {
	if err := s.checkPair(control, target); err != nil {
		return err
	}

	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}

	return nil
}

// ApplyCZ negates the amplitudes where both qubits are set.
func (s *Simulator) ApplyCZ(control, target int) error {
	if err := s.checkPair(control, target); err != nil {
		return err
	}

	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}

	return nil
}

// ApplySWAP exchanges the states of two qubits.
func (s *Simulator) ApplySWAP(a, b int) error {
	if err := s.checkPair(a, b); err != nil {
		return err
	}

	aBit := 1 << a
	bBit := 1 << b
	for i := range s.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}

	return nil
}

// ApplyRX rotates the target qubit around the X axis.
func (s *Simulator) ApplyRX(target int, theta float64) error {
	return s.ApplyGate(target, RotationX(theta))
}

// ApplyRY rotates the target qubit around the Y axis.
func (s *Simulator) ApplyRY(target int, theta float64) error {
	return s.ApplyGate(target, RotationY(theta))
}

// ApplyRZ rotates the target qubit around the Z axis.
func (s *Simulator) ApplyRZ(target int, theta float64) error {
	return s.ApplyGate(target, RotationZ(theta))
}

// Measure measures the target qubit in the computational basis and collapses
// the state onto the drawn outcome.
func (s *Simulator) Measure(target int) (bool, error) {
	if err := s.checkQubit(target); err != nil {
		return false, err
	}

	bit := 1 << target
	p0 := 0.0
	for i, a := range s.amps {
		if i&bit == 0 {
			p0 += norm2(a)
		}
	}

	pTrue := math.Min(math.Max(1-p0, 0), 1)
	outcome := s.rng.Float64() < pTrue

	p := p0
	if outcome {
		p = 1 - p0
	}
	if p < collapseEpsilon {
		slog.Debug("Measure", "Qubit", target, "Outcome", outcome,
			"Probability", p, "Collapse", "skipped")
		return outcome, nil
	}

	scale := complex(1/math.Sqrt(p), 0)
	for i := range s.amps {
		if (i&bit != 0) == outcome {
			s.amps[i] *= scale
		} else {
			s.amps[i] = 0
		}
	}

	return outcome, nil
}

// Reset measures the target qubit and returns it to |0>.
func (s *Simulator) Reset(target int) error {
	outcome, err := s.Measure(target)
	if err != nil {
		return err
	}

	if outcome {
		return s.ApplyGate(target, PauliX)
	}

	return nil
}
