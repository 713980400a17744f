package tree

import "github.com/benz9527/dsviz/lib/id"

var _ SearchTree[*BSTNode] = (*BST)(nil)

type BSTNode struct {
	left  *BSTNode
	right *BSTNode
	id    id.NodeID
	value int32
}

func (node *BSTNode) ID() id.NodeID {
	return node.id
}

func (node *BSTNode) Value() int32 {
	return node.value
}

func (node *BSTNode) Left() *BSTNode {
	if node == nil {
		return nil
	}
	return node.left
}

func (node *BSTNode) Right() *BSTNode {
	if node == nil {
		return nil
	}
	return node.right
}

func (node *BSTNode) IsLeaf() bool {
	return node != nil && node.left == nil && node.right == nil
}

// BST is an unbalanced binary search tree over distinct values.
// Not thread safe.
type BST struct {
	root  *BSTNode
	count int64
	ids   id.Monotonic
}

func NewBST() *BST {
	return &BST{}
}

func (tree *BST) Len() int64 {
	return tree.count
}

func (tree *BST) IsEmpty() bool {
	return tree.root == nil
}

func (tree *BST) Root() *BSTNode {
	return tree.root
}

func (tree *BST) Height() int {
	return bstHeight(tree.root)
}

func bstHeight(node *BSTNode) int {
	if node == nil {
		return 0
	}
	return 1 + max(bstHeight(node.left), bstHeight(node.right))
}

// Insert descends from the root recording every visited node.
// The new node is spliced into the nil link the descent ended at.
func (tree *BST) Insert(v int32) (res InsertTrace[*BSTNode], err error) {
	link := &tree.root
	for x := *link; x != nil; x = *link {
		res.Path.Append(x)
		if /* duplicate */ v == x.value {
			res.Node = x
			return res, ErrBSTValueExists
		} else if /* less */ v < x.value {
			link = &x.left
		} else /* greater */ {
			link = &x.right
		}
	}

	z := &BSTNode{
		id:    tree.ids.Next(),
		value: v,
	}
	*link = z
	tree.count++
	res.Path.Append(z)
	res.Node = z
	res.Inserted = true
	return res, nil
}

/*
r1: Target X has no left child, replace X by its right child (maybe nil).

r2: Target X has no right child, replace X by its left child.

r3: Target X has two children. Walk down to the leftmost node S of the
right subtree, recording the walk. Copy S's value into X, then unlink S.
S has no left child, so its right child takes its place.

	  |                   |
	  X                   S'  (X holding S's value)
	 / \                 / \
	L   R    =====>     L   R
	   /                   /
	  S                   Sr
	   \
	   Sr
*/
func (tree *BST) Remove(v int32) (res RemoveTrace[*BSTNode], err error) {
	res.Value = v
	link := &tree.root
	x := *link
	for x != nil && x.value != v {
		res.visit(x)
		if v < x.value {
			link = &x.left
		} else {
			link = &x.right
		}
		x = *link
	}
	if x == nil {
		return res, ErrBSTValueNotFound
	}

	res.visit(x)
	res.Deleted = x
	if /* r1 */ x.left == nil {
		*link = x.right
		x.right = nil
	} else if /* r2 */ x.right == nil {
		*link = x.left
		x.left = nil
	} else /* r3 */ {
		succLink := &x.right
		succ := x.right
		for {
			res.visit(succ)
			if succ.left == nil {
				break
			}
			succLink = &succ.left
			succ = succ.left
		}
		x.value = succ.value
		*succLink = succ.right
		succ.right = nil
		res.Successor = succ
		res.HasSuccessor = true
	}
	tree.count--
	res.Removed = true
	return res, nil
}

func (tree *BST) Search(v int32) (res SearchTrace[*BSTNode]) {
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

func (tree *BST) Contains(v int32) bool {
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

func (tree *BST) InOrder() []int32 {
	values := make([]int32, 0, tree.count)
	tree.Foreach(func(_ int64, node *BSTNode) bool {
		values = append(values, node.value)
		return true
	})
	return values
}

func (tree *BST) AllNodes() []*BSTNode {
	if tree.root == nil {
		return nil
	}
	nodes := make([]*BSTNode, 0, tree.count)
	stack := []*BSTNode{tree.root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, x)
		if x.right != nil {
			stack = append(stack, x.right)
		}
		if x.left != nil {
			stack = append(stack, x.left)
		}
	}
	return nodes
}

// Foreach is an iterative in-order traversal.
func (tree *BST) Foreach(action func(idx int64, node *BSTNode) bool) {
	if action == nil {
		return
	}
	stack := make([]*BSTNode, 0, 16)
	defer func() {
		clear(stack)
	}()
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

// Clear unlinks every node so none of them keeps the rest of the tree alive.
// The id counter is kept, ids are never reused.
func (tree *BST) Clear() {
	nodes := tree.AllNodes()
	for _, node := range nodes {
		node.left, node.right = nil, nil
	}
	tree.root = nil
	tree.count = 0
}
