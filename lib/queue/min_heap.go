package queue

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"

	"github.com/benz9527/dsviz/lib/id"
	"github.com/benz9527/dsviz/lib/trace"
)

var _ MinHeap = (*ArrayMinHeap)(nil)

var ErrHeapViolation = errors.New("[heap] heap property violation")

// ArrayMinHeap sifts by hand instead of going through container/heap,
// every swap destination is part of the trace.
// Not thread safe.
type ArrayMinHeap struct {
	cells []*Cell
	ids   id.Monotonic
}

type ArrayMinHeapOption func(*ArrayMinHeap)

func WithArrayMinHeapCapacity(capacity int) ArrayMinHeapOption {
	return func(h *ArrayMinHeap) {
		if capacity <= 0 {
			capacity = 64
		}
		h.cells = make([]*Cell, 0, capacity)
	}
}

func NewArrayMinHeap(opts ...ArrayMinHeapOption) *ArrayMinHeap {
	h := &ArrayMinHeap{}
	for _, o := range opts {
		if o != nil {
			o(h)
		}
	}
	if h.cells == nil {
		h.cells = make([]*Cell, 0, 64)
	}
	return h
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *ArrayMinHeap) Len() int64 {
	return int64(len(h.cells))
}

func (h *ArrayMinHeap) IsEmpty() bool {
	return len(h.cells) == 0
}

func (h *ArrayMinHeap) swap(i, j int) {
	h.cells[i], h.cells[j] = h.cells[j], h.cells[i]
	h.cells[i].setIndex(i)
	h.cells[j].setIndex(j)
}

// siftUp appends the new slot after every swap.
func (h *ArrayMinHeap) siftUp(i int, indices *trace.Indices) int {
	for i > 0 && h.cells[parent(i)].value > h.cells[i].value {
		h.swap(i, parent(i))
		i = parent(i)
		indices.Append(i)
	}
	return i
}

// siftDown appends the chosen child slot before every swap.
func (h *ArrayMinHeap) siftDown(i int, indices *trace.Indices) int {
	n := len(h.cells)
	for {
		smallest := i
		if l := left(i); l < n && h.cells[l].value < h.cells[smallest].value {
			smallest = l
		}
		if r := right(i); r < n && h.cells[r].value < h.cells[smallest].value {
			smallest = r
		}
		if smallest == i {
			return i
		}
		indices.Append(smallest)
		h.swap(i, smallest)
		i = smallest
	}
}

// detach cuts the slot out by moving the last cell into it.
// It returns the detached cell.
func (h *ArrayMinHeap) detach(i int) *Cell {
	last := len(h.cells) - 1
	c := h.cells[i]
	h.cells[i] = h.cells[last]
	h.cells[i].setIndex(i)
	h.cells[last] = nil
	h.cells = h.cells[:last]
	c.setIndex(-1)
	return c
}

func (h *ArrayMinHeap) Insert(v int32) (res HeapTrace) {
	c := &Cell{
		id:    h.ids.Next(),
		value: v,
		index: len(h.cells),
	}
	h.cells = append(h.cells, c)
	res.Indices.Append(c.index)
	res.Index = h.siftUp(c.index, &res.Indices)
	res.Cell = c
	return res
}

func (h *ArrayMinHeap) ExtractMin() (res HeapTrace, err error) {
	res.Index = -1
	if len(h.cells) == 0 {
		return res, ErrHeapEmpty
	}
	res.Indices.Append(0)
	res.Index = 0
	res.Cell = h.detach(0)
	if len(h.cells) > 0 {
		h.siftDown(0, &res.Indices)
	}
	return res, nil
}

// Remove replaces the first match with the last cell, then sifts down and
// keeps sifting up from wherever the descent stopped. Nothing sifts when
// the match was the last slot.
func (h *ArrayMinHeap) Remove(v int32) (res HeapTrace, err error) {
	res.Index = slices.IndexFunc(h.cells, func(c *Cell) bool {
		return c.value == v
	})
	if res.Index < 0 {
		return res, ErrHeapValueNotFound
	}
	res.Indices.Append(res.Index)
	res.Cell = h.detach(res.Index)
	if res.Index < len(h.cells) {
		h.siftUp(h.siftDown(res.Index, &res.Indices), &res.Indices)
	}
	return res, nil
}

func (h *ArrayMinHeap) PeekMin() *Cell {
	if len(h.cells) == 0 {
		return nil
	}
	return h.cells[0]
}

func (h *ArrayMinHeap) Search(v int32) (res HeapTrace) {
	res.Index = -1
	for i, c := range h.cells {
		res.Indices.Append(i)
		if c.value == v {
			res.Index = i
			res.Cell = c
			return res
		}
	}
	return res
}

func (h *ArrayMinHeap) Contains(v int32) bool {
	return slices.ContainsFunc(h.cells, func(c *Cell) bool {
		return c.value == v
	})
}

func (h *ArrayMinHeap) CellAt(i int) *Cell {
	if i < 0 || i >= len(h.cells) {
		return nil
	}
	return h.cells[i]
}

// Cells returns a copy of the array in slot order.
func (h *ArrayMinHeap) Cells() []*Cell {
	return slices.Clone(h.cells)
}

func (h *ArrayMinHeap) Values() []int32 {
	values := make([]int32, 0, len(h.cells))
	for _, c := range h.cells {
		values = append(values, c.value)
	}
	return values
}

func (h *ArrayMinHeap) Clear() {
	for _, c := range h.cells {
		c.setIndex(-1)
	}
	clear(h.cells)
	h.cells = h.cells[:0]
}

func (h *ArrayMinHeap) String() string {
	if len(h.cells) == 0 {
		return "[ Empty ]"
	}
	return joinCells(h.cells)
}

// HeapViolationValidate checks that no cell is smaller than its parent and
// that every cell knows its own slot.
func HeapViolationValidate(h *ArrayMinHeap) error {
	var err error
	for i, c := range h.cells {
		if c.index != i {
			err = multierr.Append(err, fmt.Errorf("%w: cell %d at slot %d records slot %d", ErrHeapViolation, c.value, i, c.index))
		}
		if i > 0 && h.cells[parent(i)].value > c.value {
			err = multierr.Append(err, fmt.Errorf("%w: slot %d (%d) is smaller than parent slot %d (%d)",
				ErrHeapViolation, i, c.value, parent(i), h.cells[parent(i)].value))
		}
	}
	return err
}
