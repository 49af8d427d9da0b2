package statevec

import "math"

// Matrix is a single-qubit gate in row-major order over the amplitudes
// [|0>, |1>].
type Matrix [2][2]complex128

const invSqrt2 = 1 / math.Sqrt2

// Fixed single-qubit gates.
var (
	Hadamard = Matrix{
		{complex(invSqrt2, 0), complex(invSqrt2, 0)},
		{complex(invSqrt2, 0), complex(-invSqrt2, 0)},
	}
	PauliX = Matrix{
		{0, 1},
		{1, 0},
	}
	PauliY = Matrix{
		{0, -1i},
		{1i, 0},
	}
	PauliZ = Matrix{
		{1, 0},
		{0, -1},
	}
	PhaseS = Matrix{
		{1, 0},
		{0, 1i},
	}
	PhaseSAdj = Matrix{
		{1, 0},
		{0, -1i},
	}
	GateT = Matrix{
		{1, 0},
		{0, complex(invSqrt2, invSqrt2)},
	}
	GateTAdj = Matrix{
		{1, 0},
		{0, complex(invSqrt2, -invSqrt2)},
	}
)

// RotationX returns exp(-i theta X / 2).
func RotationX(theta float64) Matrix {
	s, c := math.Sincos(theta / 2)
	return Matrix{
		{complex(c, 0), complex(0, -s)},
		{complex(0, -s), complex(c, 0)},
	}
}

// RotationY returns exp(-i theta Y / 2).
func RotationY(theta float64) Matrix {
	s, c := math.Sincos(theta / 2)
	return Matrix{
		{complex(c, 0), complex(-s, 0)},
		{complex(s, 0), complex(c, 0)},
	}
}

// RotationZ returns exp(-i theta Z / 2).
func RotationZ(theta float64) Matrix {
	s, c := math.Sincos(theta / 2)
	return Matrix{
		{complex(c, -s), 0},
		{0, complex(c, s)},
	}
}
