package id

import "strconv"

// NodeID identifies a node or cell inside the container that created it.
// It is never reused within the same container instance.
type NodeID uint64

func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Gen generates the next node id.
type Gen func() NodeID

// Allocator issues container-local node ids.
type Allocator interface {
	// Next returns the current counter value as an id and advances the counter.
	Next() NodeID
	// Issued returns how many ids have been handed out so far.
	Issued() uint64
}
