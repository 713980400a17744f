package tree

import (
	"fmt"

	"github.com/benz9527/dsviz/lib/trace"
)

var (
	ErrBSTValueExists   = fmt.Errorf("[bst] %w", trace.ErrDuplicate)
	ErrBSTValueNotFound = fmt.Errorf("[bst] %w", trace.ErrNotFound)
	ErrAVLValueExists   = fmt.Errorf("[avl] %w", trace.ErrDuplicate)
	ErrAVLValueNotFound = fmt.Errorf("[avl] %w", trace.ErrNotFound)
)

// InsertTrace describes one insert.
// Node is the newly created node, or the existing node on duplicate.
// Rotation is always RotationNone for the unbalanced BST.
type InsertTrace[N trace.Node] struct {
	Path      trace.Path[N]
	Node      N
	Inserted  bool
	Rotation  trace.Rotation
	Rotations []trace.RotationEvent
}

// RemoveTrace describes one remove.
// Deleted is the node conceptually deleted. For a node with two children
// that is the node whose value got overwritten by its in-order successor,
// Successor is the node physically unlinked and HasSuccessor is set.
// Values holds what every Path node held when it was visited, the live
// node values differ after a successor overwrite.
type RemoveTrace[N trace.Node] struct {
	Path         trace.Path[N]
	Values       []int32
	Value        int32
	Removed      bool
	Deleted      N
	Successor    N
	HasSuccessor bool
	Rotation     trace.Rotation
	Rotations    []trace.RotationEvent
}

func (res *RemoveTrace[N]) visit(node N) {
	res.Path.Append(node)
	res.Values = append(res.Values, node.Value())
}

type SearchTrace[N trace.Node] struct {
	Path  trace.Path[N]
	Node  N
	Found bool
}

// SearchTree is the surface shared by the BST and the AVL tree.
// Values are distinct, duplicates are rejected.
type SearchTree[N trace.Node] interface {
	Len() int64
	// Height is 0 for the empty tree and 1 for a single leaf.
	Height() int
	IsEmpty() bool
	Root() N
	Insert(v int32) (InsertTrace[N], error)
	Remove(v int32) (RemoveTrace[N], error)
	Search(v int32) SearchTrace[N]
	Contains(v int32) bool
	// InOrder returns the values in ascending order.
	InOrder() []int32
	// AllNodes returns the nodes in pre-order.
	AllNodes() []N
	// Foreach walks the tree in-order until action returns false.
	Foreach(action func(idx int64, node N) bool)
	Clear()
}
