package id

import "math"

var _ Allocator = (*Monotonic)(nil)

// Monotonic is the per-container node id counter.
// The zero value is ready to use and issues 0 first.
// Not thread safe, every container is owned by a single caller.
type Monotonic struct {
	next uint64
}

func (m *Monotonic) Next() NodeID {
	if m.next == math.MaxUint64 {
		// 2^64-1 allocations inside one container, treated as fatal.
		panic( /* debug assertion */ "[id] monotonic node id counter overflow")
	}
	v := m.next
	m.next++
	return NodeID(v)
}

func (m *Monotonic) Issued() uint64 {
	return m.next
}

// Gen returns the allocator as a generator function.
func (m *Monotonic) Gen() Gen {
	return m.Next
}
