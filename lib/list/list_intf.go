package list

import (
	"fmt"

	"github.com/benz9527/dsviz/lib/trace"
)

var ErrListValueNotFound = fmt.Errorf("[list] %w", trace.ErrNotFound)

// Trace is the visit order of one list operation.
// Node is the created node for inserts, the detached node for Remove and
// the first match for Search. It is nil when nothing matched.
type Trace struct {
	Path trace.Path[*NodeElement]
	Node *NodeElement
}

// BasicLinkedList is the singly linked list interface.
// Values may repeat, Remove and Search act on the first match from head.
type BasicLinkedList interface {
	Len() int64
	IsEmpty() bool
	Head() *NodeElement
	Tail() *NodeElement
	// InsertAtHead prepends a new element, the trace is the new element only.
	InsertAtHead(v int32) Trace
	// InsertAtTail walks to the old tail recording every element, then
	// appends the new element. It degrades to InsertAtHead on an empty list.
	InsertAtTail(v int32) Trace
	Remove(v int32) (Trace, error)
	Search(v int32) Trace
	Contains(v int32) bool
	// Foreach traverses from head until fn returns false.
	Foreach(fn func(idx int64, e *NodeElement) bool)
	AllNodes() []*NodeElement
	Values() []int32
	Clear()
	fmt.Stringer
}
