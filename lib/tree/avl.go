package tree

import (
	"github.com/benz9527/dsviz/lib/id"
	"github.com/benz9527/dsviz/lib/trace"
)

var _ SearchTree[*AVLNode] = (*AVL)(nil)

type AVLNode struct {
	left   *AVLNode
	right  *AVLNode
	id     id.NodeID
	value  int32
	height int
}

func (node *AVLNode) ID() id.NodeID {
	return node.id
}

func (node *AVLNode) Value() int32 {
	return node.value
}

func (node *AVLNode) Left() *AVLNode {
	if node == nil {
		return nil
	}
	return node.left
}

func (node *AVLNode) Right() *AVLNode {
	if node == nil {
		return nil
	}
	return node.right
}

// Height is the cached subtree height, 0 for nil and 1 for a leaf.
func (node *AVLNode) Height() int {
	if node == nil {
		return 0
	}
	return node.height
}

// Balance is the left subtree height minus the right one, 0 for nil.
func (node *AVLNode) Balance() int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

func (node *AVLNode) IsLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

func (node *AVLNode) updateHeight() {
	node.height = 1 + max(node.left.Height(), node.right.Height())
}

// AVL is a height balanced binary search tree over distinct values.
// Not thread safe.
type AVL struct {
	root  *AVLNode
	count int64
	ids   id.Monotonic
}

func NewAVL() *AVL {
	return &AVL{}
}

func (tree *AVL) Len() int64 {
	return tree.count
}

func (tree *AVL) IsEmpty() bool {
	return tree.root == nil
}

func (tree *AVL) Root() *AVLNode {
	return tree.root
}

func (tree *AVL) Height() int {
	return tree.root.Height()
}

/*
Right rotate:

	    |                |
	    y                x
	   / \              / \
	  x   c   =====>   a   y
	 / \                  / \
	a   b                b   c

y is the lower node after the rotation, so its height is refreshed first.
*/
func avlRightRotate(y *AVLNode) *AVLNode {
	x := y.left
	y.left = x.right
	x.right = y
	y.updateHeight()
	x.updateHeight()
	return x
}

/*
Left rotate:

	  |                    |
	  x                    y
	 / \                  / \
	a   y     =====>     x   c
	   / \              / \
	  b   c            a   b
*/
func avlLeftRotate(x *AVLNode) *AVLNode {
	y := x.right
	x.right = y.left
	y.left = x
	x.updateHeight()
	y.updateHeight()
	return y
}

func avlRotate(node *AVLNode, kind trace.Rotation) *AVLNode {
	switch kind {
	case trace.RotationRight:
		return avlRightRotate(node)
	case trace.RotationLeft:
		return avlLeftRotate(node)
	case trace.RotationLeftRight:
		node.left = avlLeftRotate(node.left)
		return avlRightRotate(node)
	case trace.RotationRightLeft:
		node.right = avlRightRotate(node.right)
		return avlLeftRotate(node)
	default:
	}
	panic( /* debug assertion */ "[avl] unknown rotation " + kind.String())
}

func rotationEvent(kind trace.Rotation, pivot *AVLNode) trace.RotationEvent {
	return trace.RotationEvent{
		Kind:       kind,
		PivotID:    pivot.id,
		PivotValue: pivot.value,
	}
}

// Insert reports the rotation applied closest to the root, the last one
// observed while the recursion unwinds. Every rotation lands in Rotations
// in the order it was applied.
func (tree *AVL) Insert(v int32) (res InsertTrace[*AVLNode], err error) {
	tree.root = tree.insert(tree.root, v, &res)
	if !res.Inserted {
		return res, ErrAVLValueExists
	}
	tree.count++
	return res, nil
}

func (tree *AVL) insert(node *AVLNode, v int32, res *InsertTrace[*AVLNode]) *AVLNode {
	if node == nil {
		z := &AVLNode{
			id:     tree.ids.Next(),
			value:  v,
			height: 1,
		}
		res.Path.Append(z)
		res.Node = z
		res.Inserted = true
		return z
	}

	res.Path.Append(node)
	if v < node.value {
		node.left = tree.insert(node.left, v, res)
	} else if v > node.value {
		node.right = tree.insert(node.right, v, res)
	} else /* duplicate */ {
		res.Node = node
		return node
	}

	node.updateHeight()
	var (
		bal  = node.Balance()
		kind trace.Rotation
	)
	if /* left-left */ bal > 1 && v < node.left.value {
		kind = trace.RotationRight
	} else if /* right-right */ bal < -1 && v > node.right.value {
		kind = trace.RotationLeft
	} else if /* left-right */ bal > 1 && v > node.left.value {
		kind = trace.RotationLeftRight
	} else if /* right-left */ bal < -1 && v < node.right.value {
		kind = trace.RotationRightLeft
	} else {
		return node
	}
	res.Rotation = kind
	res.Rotations = append(res.Rotations, rotationEvent(kind, node))
	return avlRotate(node, kind)
}

// Remove reports the first rotation applied, the one closest to the removed
// leaf. Every rotation lands in Rotations in the order it was applied.
// A node with two children takes its in-order successor's value and the
// successor is removed from the right subtree. The successor search is
// traced, its removal is not.
func (tree *AVL) Remove(v int32) (res RemoveTrace[*AVLNode], err error) {
	res.Value = v
	tree.root = tree.remove(tree.root, v, &res, true)
	if !res.Removed {
		return res, ErrAVLValueNotFound
	}
	tree.count--
	return res, nil
}

func (tree *AVL) remove(node *AVLNode, v int32, res *RemoveTrace[*AVLNode], traced bool) *AVLNode {
	if node == nil {
		return nil
	}

	if traced {
		res.visit(node)
	}
	if v < node.value {
		node.left = tree.remove(node.left, v, res, traced)
	} else if v > node.value {
		node.right = tree.remove(node.right, v, res, traced)
	} else if node.left == nil || node.right == nil {
		child := node.left
		if child == nil {
			child = node.right
		}
		node.left, node.right = nil, nil
		if traced {
			res.Deleted = node
		} else {
			res.Successor = node
			res.HasSuccessor = true
		}
		res.Removed = true
		// The child subtree is already balanced with a correct height.
		return child
	} else {
		succ := node.right
		for {
			if traced {
				res.visit(succ)
			}
			if succ.left == nil {
				break
			}
			succ = succ.left
		}
		node.value = succ.value
		if traced {
			res.Deleted = node
		}
		node.right = tree.remove(node.right, succ.value, res, false)
	}

	node.updateHeight()
	var (
		bal  = node.Balance()
		kind trace.Rotation
	)
	if /* left heavy */ bal > 1 && node.left.Balance() >= 0 {
		kind = trace.RotationRight
	} else if /* left heavy, inner */ bal > 1 {
		kind = trace.RotationLeftRight
	} else if /* right heavy */ bal < -1 && node.right.Balance() <= 0 {
		kind = trace.RotationLeft
	} else if /* right heavy, inner */ bal < -1 {
		kind = trace.RotationRightLeft
	} else {
		return node
	}
	if res.Rotation == trace.RotationNone {
		res.Rotation = kind
	}
	res.Rotations = append(res.Rotations, rotationEvent(kind, node))
	return avlRotate(node, kind)
}

func (tree *AVL) Search(v int32) (res SearchTrace[*AVLNode]) {
	for x := tree.root; x != nil; {
		res.Path.Append(x)
		if v == x.value {
			res.Node = x
			res.Found = true
			return res
		} else if v < x.value {
			x = x.left
		} else {
			x = x.right
		}
	}
	return res
}

func (tree *AVL) Contains(v int32) bool {
	for x := tree.root; x != nil; {
		if v == x.value {
			return true
		} else if v < x.value {
			x = x.left
		} else {
			x = x.right
		}
	}
	return false
}

func (tree *AVL) InOrder() []int32 {
	values := make([]int32, 0, tree.count)
	tree.Foreach(func(_ int64, node *AVLNode) bool {
		values = append(values, node.value)
		return true
	})
	return values
}

func (tree *AVL) AllNodes() []*AVLNode {
	nodes := make([]*AVLNode, 0, tree.count)
	var walk func(node *AVLNode)
	walk = func(node *AVLNode) {
		if node == nil {
			return
		}
		nodes = append(nodes, node)
		walk(node.left)
		walk(node.right)
	}
	walk(tree.root)
	if len(nodes) == 0 {
		return nil
	}
	return nodes
}

func (tree *AVL) Foreach(action func(idx int64, node *AVLNode) bool) {
	if action == nil {
		return
	}
	stack := make([]*AVLNode, 0, tree.Height())
	idx := int64(0)
	for aux := tree.root; aux != nil || len(stack) > 0; {
		for ; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !action(idx, aux) {
			return
		}
		idx++
		aux = aux.right
	}
}

func (tree *AVL) Clear() {
	for _, node := range tree.AllNodes() {
		node.left, node.right = nil, nil
	}
	tree.root = nil
	tree.count = 0
}
