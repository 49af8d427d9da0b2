package memory

import "log/slog"

// Memory is the identifier map of one run.
type Memory struct {
	qubits   *Allocator
	results  *Allocator
	outcomes map[int]bool
}

// New creates an empty identifier map.
func New() *Memory {
	return &Memory{
		qubits:   NewAllocator(),
		results:  NewAllocator(),
		outcomes: make(map[int]bool),
	}
}

// QubitIndex returns the simulator qubit bound to a qubit handle.
func (m *Memory) QubitIndex(handle uint64) int {
	return m.qubits.Index(handle)
}

// ResultIndex returns the result slot bound to a result handle. Result slots
// are numbered independently from qubits.
func (m *Memory) ResultIndex(handle uint64) int {
	return m.results.Index(handle)
}

// RecordOutcome stores a measurement outcome at the slot of a result handle.
func (m *Memory) RecordOutcome(handle uint64, value bool) {
	slot := m.results.Index(handle)
	m.outcomes[slot] = value

	slog.Debug("RecordOutcome", "Handle", handle, "Slot", slot, "Value", value)
}

// ReadOutcome returns the outcome stored for a result handle. A handle that
// was never written reads as false.
func (m *Memory) ReadOutcome(handle uint64) bool {
	slot, ok := m.results.Lookup(handle)
	if !ok {
		return false
	}

	return m.outcomes[slot]
}

// NumQubits returns how many distinct qubit handles have been seen.
func (m *Memory) NumQubits() int {
	return m.qubits.Len()
}

// NumResults returns how many distinct result handles have been seen.
func (m *Memory) NumResults() int {
	return m.results.Len()
}

// Outcomes returns a copy of the recorded outcomes keyed by result slot.
func (m *Memory) Outcomes() map[int]bool {
	out := make(map[int]bool, len(m.outcomes))
	for k, v := range m.outcomes {
		out[k] = v
	}

	return out
}
