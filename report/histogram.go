package report

import (
	"slices"
	"strings"
)

// Histogram counts the measurement records of repeated runs.
type Histogram struct {
	Counts map[string]int `yaml:"counts" msgpack:"counts" cbor:"counts"`
	Shots  int            `yaml:"shots" msgpack:"shots" cbor:"shots"`
}

// NewHistogram creates an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{
		Counts: make(map[string]int),
	}
}

// Add counts one shot.
func (h *Histogram) Add(key string) {
	h.Counts[key]++
	h.Shots++
}

// Merge adds the counts of another histogram.
func (h *Histogram) Merge(o *Histogram) {
	for k, v := range o.Counts {
		h.Counts[k] += v
	}
	h.Shots += o.Shots
}

// Frequency returns the fraction of shots that produced key.
func (h *Histogram) Frequency(key string) float64 {
	if h.Shots == 0 {
		return 0
	}

	return float64(h.Counts[key]) / float64(h.Shots)
}

// Keys returns the observed outcomes in order.
func (h *Histogram) Keys() []string {
	keys := make([]string, 0, len(h.Counts))
	for k := range h.Counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// OutcomeKey renders recorded outcomes as a bit string with result slot 0 as
// the leftmost digit. Slots never written read as 0.
func OutcomeKey(outcomes map[int]bool) string {
	n := 0
	for slot := range outcomes {
		n = max(n, slot+1)
	}

	var sb strings.Builder
	for slot := 0; slot < n; slot++ {
		if outcomes[slot] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// RecordKey renders an ordered list of output records as a bit string.
func RecordKey(records []bool) string {
	var sb strings.Builder
	for _, r := range records {
		if r {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
