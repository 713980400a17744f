package stack

import (
	"strconv"
	"strings"

	"github.com/benz9527/dsviz/lib/id"
	"github.com/benz9527/dsviz/lib/trace"
)

var (
	_ Stack      = (*ArrayStack)(nil)
	_ trace.Node = (*Cell)(nil)
)

type Cell struct {
	id    id.NodeID
	value int32
}

func (c *Cell) ID() id.NodeID {
	return c.id
}

func (c *Cell) Value() int32 {
	return c.value
}

// ArrayStack grows at the end of the array, the last slot is the top.
// Not thread safe.
type ArrayStack struct {
	cells []*Cell
	ids   id.Monotonic
}

func NewArrayStack() *ArrayStack {
	return &ArrayStack{
		cells: make([]*Cell, 0, 16),
	}
}

func (s *ArrayStack) Len() int64 {
	return int64(len(s.cells))
}

func (s *ArrayStack) IsEmpty() bool {
	return len(s.cells) == 0
}

func (s *ArrayStack) Push(v int32) *Cell {
	c := &Cell{
		id:    s.ids.Next(),
		value: v,
	}
	s.cells = append(s.cells, c)
	return c
}

func (s *ArrayStack) Pop() (*Cell, error) {
	n := len(s.cells)
	if n == 0 {
		return nil, ErrStackEmpty
	}
	top := s.cells[n-1]
	s.cells[n-1] = nil
	s.cells = s.cells[:n-1]
	return top, nil
}

func (s *ArrayStack) Peek() *Cell {
	if len(s.cells) == 0 {
		return nil
	}
	return s.cells[len(s.cells)-1]
}

func (s *ArrayStack) Search(v int32) (res SearchTrace) {
	for i := len(s.cells) - 1; i >= 0; i-- {
		res.Path.Append(s.cells[i])
		if s.cells[i].value == v {
			res.Cell = s.cells[i]
			res.Position = res.Path.Len()
			return res
		}
	}
	return res
}

func (s *ArrayStack) Contains(v int32) bool {
	return s.Search(v).Cell != nil
}

func (s *ArrayStack) Elements() []*Cell {
	cells := make([]*Cell, len(s.cells))
	copy(cells, s.cells)
	return cells
}

func (s *ArrayStack) Clear() {
	clear(s.cells)
	s.cells = s.cells[:0]
}

// String renders "Top -> [ 3, 2, 1 ] <- Bottom", or "[ Empty ]".
func (s *ArrayStack) String() string {
	if len(s.cells) == 0 {
		return "[ Empty ]"
	}
	var builder strings.Builder
	builder.WriteString("Top -> [ ")
	for i := len(s.cells) - 1; i >= 0; i-- {
		builder.WriteString(strconv.FormatInt(int64(s.cells[i].value), 10))
		if i > 0 {
			builder.WriteString(", ")
		}
	}
	builder.WriteString(" ] <- Bottom")
	return builder.String()
}
