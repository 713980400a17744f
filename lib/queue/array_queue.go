package queue

import (
	"github.com/benz9527/dsviz/lib/id"
)

var _ Queue = (*ArrayQueue)(nil)

// ArrayQueue keeps the logical front at slot 0. Dequeue shifts the rest
// left by one, which is fine for a handful of cells.
// Not thread safe.
type ArrayQueue struct {
	cells []*Cell
	ids   id.Monotonic
}

func NewArrayQueue() *ArrayQueue {
	return &ArrayQueue{
		cells: make([]*Cell, 0, 16),
	}
}

func (q *ArrayQueue) Len() int64 {
	return int64(len(q.cells))
}

func (q *ArrayQueue) IsEmpty() bool {
	return len(q.cells) == 0
}

func (q *ArrayQueue) Enqueue(v int32) *Cell {
	c := &Cell{
		id:    q.ids.Next(),
		value: v,
		index: len(q.cells),
	}
	q.cells = append(q.cells, c)
	return c
}

func (q *ArrayQueue) Dequeue() (*Cell, error) {
	if len(q.cells) == 0 {
		return nil, ErrQueueEmpty
	}
	front := q.cells[0]
	n := copy(q.cells, q.cells[1:])
	q.cells[n] = nil
	q.cells = q.cells[:n]
	for i, c := range q.cells {
		c.setIndex(i)
	}
	front.setIndex(-1)
	return front, nil
}

func (q *ArrayQueue) PeekFront() *Cell {
	if len(q.cells) == 0 {
		return nil
	}
	return q.cells[0]
}

func (q *ArrayQueue) PeekRear() *Cell {
	if len(q.cells) == 0 {
		return nil
	}
	return q.cells[len(q.cells)-1]
}

func (q *ArrayQueue) Search(v int32) (res QueueTrace) {
	for i, c := range q.cells {
		res.Path.Append(c)
		if c.value == v {
			res.Cell = c
			res.Position = i + 1
			return res
		}
	}
	return res
}

func (q *ArrayQueue) Contains(v int32) bool {
	return q.Search(v).Cell != nil
}

// Cells returns the cells from front to rear.
func (q *ArrayQueue) Cells() []*Cell {
	cells := make([]*Cell, len(q.cells))
	copy(cells, q.cells)
	return cells
}

func (q *ArrayQueue) Clear() {
	for _, c := range q.cells {
		c.setIndex(-1)
	}
	clear(q.cells)
	q.cells = q.cells[:0]
}

// String renders "Front -> [ 1, 2 ] <- Rear", or "[ Empty ]".
func (q *ArrayQueue) String() string {
	if len(q.cells) == 0 {
		return "[ Empty ]"
	}
	return "Front -> " + joinCells(q.cells) + " <- Rear"
}
