package queue

import (
	"fmt"

	"github.com/benz9527/dsviz/lib/trace"
)

var (
	ErrHeapEmpty         = fmt.Errorf("[heap] %w", trace.ErrEmpty)
	ErrHeapValueNotFound = fmt.Errorf("[heap] %w", trace.ErrNotFound)
	ErrQueueEmpty        = fmt.Errorf("[queue] %w", trace.ErrEmpty)
)

type ReadOnlyCell interface {
	trace.Node
	// Index is the current array slot, -1 once detached.
	Index() int
}

// HeapTrace is the array slots one heap operation touched, in order.
// Index is the slot the operation settled on, the final slot of an
// inserted cell or the match of a search, -1 when nothing matched.
type HeapTrace struct {
	Indices trace.Indices
	Cell    *Cell
	Index   int
}

// MinHeap is an array backed binary min-heap. Values may repeat.
type MinHeap interface {
	Len() int64
	IsEmpty() bool
	Insert(v int32) HeapTrace
	ExtractMin() (HeapTrace, error)
	// Remove deletes the first cell holding v in array order.
	Remove(v int32) (HeapTrace, error)
	PeekMin() *Cell
	Search(v int32) HeapTrace
	Contains(v int32) bool
	// CellAt returns nil for an out of range index.
	CellAt(i int) *Cell
	Cells() []*Cell
	Values() []int32
	Clear()
	fmt.Stringer
}

// QueueTrace is the cells one queue search visited from front to rear.
type QueueTrace struct {
	Path trace.Path[*Cell]
	Cell *Cell
	// Position counts from the front starting at 1, 0 when not found.
	Position int
}

// Queue is a FIFO of int32 cells.
type Queue interface {
	Len() int64
	IsEmpty() bool
	Enqueue(v int32) *Cell
	Dequeue() (*Cell, error)
	PeekFront() *Cell
	PeekRear() *Cell
	Search(v int32) QueueTrace
	Contains(v int32) bool
	Cells() []*Cell
	Clear()
	fmt.Stringer
}
