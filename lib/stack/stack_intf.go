package stack

import (
	"fmt"

	"github.com/benz9527/dsviz/lib/trace"
)

var ErrStackEmpty = fmt.Errorf("[stack] %w", trace.ErrEmpty)

// SearchTrace is the cells a search visited from top to bottom.
type SearchTrace struct {
	Path trace.Path[*Cell]
	Cell *Cell
	// Position counts from the top starting at 1, 0 when not found.
	Position int
}

type Stack interface {
	Len() int64
	IsEmpty() bool
	Push(v int32) *Cell
	Pop() (*Cell, error)
	// Peek returns the top cell or nil.
	Peek() *Cell
	Search(v int32) SearchTrace
	Contains(v int32) bool
	// Elements returns the cells from bottom to top.
	Elements() []*Cell
	Clear()
	fmt.Stringer
}
