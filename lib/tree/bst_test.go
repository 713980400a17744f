package tree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/dsviz/lib/trace"
)

func bstFrom(t *testing.T, values ...int32) *BST {
	tree := NewBST()
	for _, v := range values {
		_, err := tree.Insert(v)
		require.NoError(t, err)
	}
	require.NoError(t, OrderViolationValidate[*BSTNode](tree))
	return tree
}

func preOrderValues[N trace.Node](nodes []N) []int32 {
	return trace.Path[N](nodes).Values()
}

func TestBST_InsertTrace(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20)

	res, err := tree.Insert(40)
	require.NoError(t, err)
	require.True(t, res.Inserted)
	require.Equal(t, []int32{50, 30, 40}, res.Path.Values())
	last, ok := res.Path.Last()
	require.True(t, ok)
	require.Equal(t, res.Node, last)
	require.Equal(t, int32(40), res.Node.Value())
	require.True(t, res.Node.IsLeaf())
	require.Equal(t, trace.RotationNone, res.Rotation)
	require.Empty(t, res.Rotations)
	require.Equal(t, int64(5), tree.Len())

	// Every path node is the parent of the next one.
	for i := 0; i+1 < res.Path.Len(); i++ {
		parent, child := res.Path[i], res.Path[i+1]
		require.True(t, parent.Left() == child || parent.Right() == child)
	}
}

func TestBST_InsertDuplicate(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70)
	before := preOrderValues(tree.AllNodes())

	res, err := tree.Insert(30)
	require.ErrorIs(t, err, ErrBSTValueExists)
	require.True(t, errors.Is(err, trace.ErrDuplicate))
	require.False(t, res.Inserted)
	require.Equal(t, []int32{50, 30}, res.Path.Values())
	require.Equal(t, int32(30), res.Node.Value())
	require.Equal(t, before, preOrderValues(tree.AllNodes()))
	require.Equal(t, int64(3), tree.Len())
}

func TestBST_RemoveTwoChildren(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20, 40, 60, 80)
	root := tree.Root()
	rootID := root.ID()

	res, err := tree.Remove(50)
	require.NoError(t, err)
	require.True(t, res.Removed)
	// Lookup path then the successor search path.
	require.Equal(t, []int32{50, 70, 60}, res.Values)
	// The root now holds 60, the live path no longer shows the removed value.
	require.Equal(t, []int32{60, 70, 60}, res.Path.Values())
	require.Equal(t, rootID, res.Path.IDs()[0])
	require.Equal(t, rootID, res.Deleted.ID())
	require.True(t, res.HasSuccessor)
	require.Equal(t, int32(60), res.Deleted.Value())
	require.NotNil(t, res.Successor)
	require.Equal(t, int32(60), res.Successor.Value())
	require.NotEqual(t, rootID, res.Successor.ID())
	require.Equal(t, root, tree.Root())
	require.Equal(t, int32(60), tree.Root().Value())
	require.Equal(t, []int32{20, 30, 40, 60, 70, 80}, tree.InOrder())
	require.Equal(t, int64(6), tree.Len())
	require.NoError(t, OrderViolationValidate[*BSTNode](tree))
}

func TestBST_RemoveSuccessorWithRightChild(t *testing.T) {
	tree := bstFrom(t, 50, 30, 80, 60, 90, 70)

	res, err := tree.Remove(50)
	require.NoError(t, err)
	require.Equal(t, []int32{50, 80, 60}, res.Values)
	require.Equal(t, int32(60), tree.Root().Value())
	require.Equal(t, int32(70), tree.Root().Right().Left().Value())
	require.Equal(t, []int32{30, 60, 70, 80, 90}, tree.InOrder())
	require.NoError(t, OrderViolationValidate[*BSTNode](tree))
}

func TestBST_RemoveLeafAndSingleChild(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20)

	res, err := tree.Remove(30)
	require.NoError(t, err)
	require.Equal(t, []int32{50, 30}, res.Values)
	require.Nil(t, res.Successor)
	require.False(t, res.HasSuccessor)
	require.Equal(t, int32(30), res.Deleted.Value())
	require.Equal(t, int32(20), tree.Root().Left().Value())

	res, err = tree.Remove(20)
	require.NoError(t, err)
	require.Equal(t, []int32{50, 20}, res.Values)
	require.Nil(t, tree.Root().Left())

	res, err = tree.Remove(50)
	require.NoError(t, err)
	require.Equal(t, int32(70), tree.Root().Value())
	require.Equal(t, []int32{70}, tree.InOrder())
}

func TestBST_RemoveNotFound(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70)
	res, err := tree.Remove(65)
	require.ErrorIs(t, err, ErrBSTValueNotFound)
	require.ErrorIs(t, err, trace.ErrNotFound)
	require.False(t, res.Removed)
	require.Equal(t, []int32{50, 70}, res.Values)
	require.Equal(t, int64(3), tree.Len())

	empty := NewBST()
	res, err = empty.Remove(1)
	require.ErrorIs(t, err, ErrBSTValueNotFound)
	require.Zero(t, res.Path.Len())
}

func TestBST_SearchTrace(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20, 40)

	res := tree.Search(40)
	require.True(t, res.Found)
	require.Equal(t, []int32{50, 30, 40}, res.Path.Values())
	require.Equal(t, int32(40), res.Node.Value())

	res = tree.Search(45)
	require.False(t, res.Found)
	require.Nil(t, res.Node)
	require.Equal(t, []int32{50, 30, 40}, res.Path.Values())
	last, _ := res.Path.Last()
	require.Nil(t, last.Right())

	res = NewBST().Search(1)
	require.False(t, res.Found)
	require.Zero(t, res.Path.Len())

	require.True(t, tree.Contains(20))
	require.False(t, tree.Contains(21))
}

func TestBST_TraversalAndClear(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20, 40, 60, 80)
	require.Equal(t, 3, tree.Height())
	require.Equal(t, []int32{50, 30, 20, 40, 70, 60, 80}, preOrderValues(tree.AllNodes()))

	visited := make([]int32, 0, 3)
	tree.Foreach(func(idx int64, node *BSTNode) bool {
		visited = append(visited, node.Value())
		return idx < 2
	})
	require.Equal(t, []int32{20, 30, 40}, visited)

	ids := trace.Path[*BSTNode](tree.AllNodes()).IDs()
	require.Len(t, ids, 7)
	seen := make(map[uint64]struct{}, len(ids))
	for _, nodeID := range ids {
		seen[uint64(nodeID)] = struct{}{}
	}
	require.Len(t, seen, 7)

	root := tree.Root()
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Zero(t, tree.Len())
	require.Zero(t, tree.Height())
	require.Nil(t, root.Left())
	require.Nil(t, tree.AllNodes())
	require.Empty(t, tree.InOrder())

	res, err := tree.Insert(1)
	require.NoError(t, err)
	_, dup := seen[uint64(res.Node.ID())]
	require.False(t, dup)
}

func TestBST_InsertRemoveRoundTrip(t *testing.T) {
	tree := bstFrom(t, 50, 30, 70, 20, 40, 60, 80)
	before := preOrderValues(tree.AllNodes())
	for _, v := range []int32{10, 35, 45, 65, 90} {
		_, err := tree.Insert(v)
		require.NoError(t, err)
		_, err = tree.Remove(v)
		require.NoError(t, err)
		require.Equal(t, before, preOrderValues(tree.AllNodes()))
	}
}

func TestBST_RandomAgainstBTree(t *testing.T) {
	tree := NewBST()
	oracle := btree.NewOrderedG[int32](4)
	for i := 0; i < 5_000; i++ {
		v := rand.Int31n(512)
		if rand.Intn(3) == 0 {
			_, expected := oracle.Delete(v)
			_, err := tree.Remove(v)
			require.Equal(t, expected, err == nil)
		} else {
			_, existed := oracle.ReplaceOrInsert(v)
			res, err := tree.Insert(v)
			require.Equal(t, existed, err != nil)
			require.Equal(t, v, res.Node.Value())
		}
		require.Equal(t, int64(oracle.Len()), tree.Len())
	}
	expected := make([]int32, 0, oracle.Len())
	oracle.Ascend(func(item int32) bool {
		expected = append(expected, item)
		return true
	})
	require.Equal(t, expected, tree.InOrder())
	require.NoError(t, OrderViolationValidate[*BSTNode](tree))
}

func TestInOrderString(t *testing.T) {
	require.Equal(t, "[ Empty ]", InOrderString[*BSTNode](NewBST()))
	require.Equal(t, "[ 20, 30, 50 ]", InOrderString[*BSTNode](bstFrom(t, 50, 30, 20)))
	require.Equal(t, "[ -1, 7 ]", InOrderString[*AVLNode](avlFrom(t, 7, -1)))
}
