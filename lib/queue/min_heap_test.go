package queue

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/dsviz/lib/trace"
)

func heapFrom(t *testing.T, values ...int32) *ArrayMinHeap {
	h := NewArrayMinHeap(WithArrayMinHeapCapacity(len(values)))
	for _, v := range values {
		h.Insert(v)
		require.NoError(t, HeapViolationValidate(h))
	}
	return h
}

func TestArrayMinHeap_InsertSiftUp(t *testing.T) {
	h := heapFrom(t, 5, 3, 8)
	require.Equal(t, []int32{3, 5, 8}, h.Values())

	res := h.Insert(1)
	require.Equal(t, trace.Indices{3, 1, 0}, res.Indices)
	require.Equal(t, 0, res.Index)
	require.Equal(t, res.Cell, h.PeekMin())
	require.Equal(t, 0, res.Cell.Index())
	require.Equal(t, []int32{1, 3, 8, 5}, h.Values())
	require.Equal(t, "[ 1, 3, 8, 5 ]", h.String())
	require.NoError(t, HeapViolationValidate(h))

	res = h.Insert(9)
	require.Equal(t, trace.Indices{4}, res.Indices)
	require.Equal(t, 4, res.Index)
}

func TestArrayMinHeap_ExtractMin(t *testing.T) {
	h := heapFrom(t, 5, 3, 8, 1)
	minCell := h.PeekMin()

	res, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, minCell, res.Cell)
	require.Equal(t, -1, res.Cell.Index())
	require.Equal(t, int32(1), res.Cell.Value())
	// 5 moves to the root, then swaps with 3 at slot 1.
	require.Equal(t, trace.Indices{0, 1}, res.Indices)
	require.Equal(t, []int32{3, 5, 8}, h.Values())
	require.NoError(t, HeapViolationValidate(h))

	h = heapFrom(t, 42)
	res, err = h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, trace.Indices{0}, res.Indices)
	require.True(t, h.IsEmpty())
	require.Equal(t, "[ Empty ]", h.String())

	res, err = h.ExtractMin()
	require.ErrorIs(t, err, ErrHeapEmpty)
	require.ErrorIs(t, err, trace.ErrEmpty)
	require.Nil(t, res.Cell)
	require.Zero(t, res.Indices.Len())
}

func TestArrayMinHeap_Remove(t *testing.T) {
	// [ 1, 5, 2, 6, 7, 3 ], removing 6 pulls 3 into slot 3 which then sifts up.
	h := heapFrom(t, 1, 5, 2, 6, 7, 3)
	require.Equal(t, []int32{1, 5, 2, 6, 7, 3}, h.Values())
	res, err := h.Remove(6)
	require.NoError(t, err)
	require.Equal(t, 3, res.Index)
	require.Equal(t, int32(6), res.Cell.Value())
	require.Equal(t, trace.Indices{3, 1}, res.Indices)
	require.Equal(t, []int32{1, 3, 2, 5, 7}, h.Values())
	require.NoError(t, HeapViolationValidate(h))

	// Removing the last slot does not sift.
	res, err = h.Remove(7)
	require.NoError(t, err)
	require.Equal(t, trace.Indices{4}, res.Indices)
	require.Equal(t, []int32{1, 3, 2, 5}, h.Values())

	// Root removal sifts down.
	res, err = h.Remove(1)
	require.NoError(t, err)
	require.Equal(t, trace.Indices{0, 2}, res.Indices)
	require.Equal(t, []int32{2, 3, 5}, h.Values())
	require.NoError(t, HeapViolationValidate(h))

	res, err = h.Remove(100)
	require.ErrorIs(t, err, ErrHeapValueNotFound)
	require.Equal(t, -1, res.Index)
	require.Zero(t, res.Indices.Len())
}

func TestArrayMinHeap_SearchAndCellAt(t *testing.T) {
	h := heapFrom(t, 4, 7, 9, 8)
	res := h.Search(9)
	require.Equal(t, trace.Indices{0, 1, 2}, res.Indices)
	require.Equal(t, 2, res.Index)
	require.Equal(t, h.CellAt(2), res.Cell)

	res = h.Search(10)
	require.Equal(t, -1, res.Index)
	require.Nil(t, res.Cell)
	require.Equal(t, 4, res.Indices.Len())

	require.Nil(t, h.CellAt(-1))
	require.Nil(t, h.CellAt(4))
	require.True(t, h.Contains(8))
	require.False(t, h.Contains(10))

	cells := h.Cells()
	cells[0] = nil
	require.NotNil(t, h.CellAt(0))

	h.Clear()
	require.True(t, h.IsEmpty())
	require.Nil(t, h.PeekMin())
	require.Equal(t, -1, cells[1].Index())
}

func TestArrayMinHeap_DuplicatesAndIDs(t *testing.T) {
	h := heapFrom(t, 2, 2, 2)
	seen := map[uint64]struct{}{}
	for _, c := range h.Cells() {
		seen[uint64(c.ID())] = struct{}{}
	}
	assert.Len(t, seen, 3)
	res, err := h.Remove(2)
	require.NoError(t, err)
	require.Equal(t, 0, res.Index)
	require.Equal(t, int64(2), h.Len())
}

func TestArrayMinHeap_RandomAgainstGodsBinaryHeap(t *testing.T) {
	h := NewArrayMinHeap()
	oracle := binaryheap.NewWithIntComparator()
	for i := 0; i < 5_000; i++ {
		if rand.Intn(3) == 0 {
			expected, ok := oracle.Pop()
			res, err := h.ExtractMin()
			require.Equal(t, ok, err == nil)
			if ok {
				require.Equal(t, int32(expected.(int)), res.Cell.Value())
				// Every sift-down step moves from a slot to one of its children.
				for j := 1; j < res.Indices.Len(); j++ {
					require.Equal(t, res.Indices[j-1], parent(res.Indices[j]))
				}
			}
		} else {
			v := rand.Int31n(1_000)
			oracle.Push(int(v))
			res := h.Insert(v)
			require.Equal(t, res.Index, res.Cell.Index())
			last, _ := res.Indices.Last()
			require.Equal(t, res.Index, last)
		}
		require.Equal(t, int64(oracle.Size()), h.Len())
		require.NoError(t, HeapViolationValidate(h))
	}
}
