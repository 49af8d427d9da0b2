// Package report turns simulator state and run outcomes into probability
// distributions, histograms and their printed or encoded forms.
package report

import (
	"fmt"
	"slices"
	"strings"
)

// Probability cut-offs below which a basis state is left out.
const (
	PrintThreshold = 1e-6
	BulkThreshold  = 1e-10
)

// BasisLabel formats a basis index as an n-digit binary string. The highest
// qubit is the leftmost digit.
func BasisLabel(index, n int) string {
	return fmt.Sprintf("%0*b", n, index)
}

// Distribution maps every basis state whose probability exceeds threshold to
// that probability.
func Distribution(state []complex128, n int, threshold float64) map[string]float64 {
	dist := make(map[string]float64)

	for i, a := range state {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p > threshold {
			dist[BasisLabel(i, n)] = p
		}
	}

	return dist
}

// Entry is one basis state of a distribution.
type Entry struct {
	Basis       string  `yaml:"basis" msgpack:"basis" cbor:"basis"`
	Probability float64 `yaml:"probability" msgpack:"probability" cbor:"probability"`
}

// Entries lists a distribution in basis order.
func Entries(dist map[string]float64) []Entry {
	entries := make([]Entry, 0, len(dist))
	for basis, p := range dist {
		entries = append(entries, Entry{Basis: basis, Probability: p})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Basis, b.Basis)
	})

	return entries
}

// Total returns the summed probability of a distribution.
func Total(dist map[string]float64) float64 {
	sum := 0.0
	for _, p := range dist {
		sum += p
	}

	return sum
}
