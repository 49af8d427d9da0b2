// Package memory maps the opaque qubit and result handles of a program to
// dense simulator indices and keeps the measurement outcomes of a run.
package memory

// Allocator hands out dense indices to handles on first use. Indices start at
// 0, grow by one per new handle and never change once assigned.
type Allocator struct {
	indices map[uint64]int
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		indices: make(map[uint64]int),
	}
}

// Index returns the index bound to handle, binding the next free index if the
// handle has not been seen yet.
func (a *Allocator) Index(handle uint64) int {
	if idx, ok := a.indices[handle]; ok {
		return idx
	}

	idx := len(a.indices)
	a.indices[handle] = idx

	return idx
}

// Lookup returns the index bound to handle without binding a new one.
func (a *Allocator) Lookup(handle uint64) (int, bool) {
	idx, ok := a.indices[handle]
	return idx, ok
}

// Len returns the number of handles bound so far.
func (a *Allocator) Len() int {
	return len(a.indices)
}
