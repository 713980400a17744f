package queue

import (
	"strconv"
	"strings"

	"github.com/benz9527/dsviz/lib/id"
)

var _ ReadOnlyCell = (*Cell)(nil)

type Cell struct {
	id    id.NodeID
	index int
	value int32
}

func (c *Cell) ID() id.NodeID {
	return c.id
}

func (c *Cell) Value() int32 {
	return c.value
}

func (c *Cell) Index() int {
	if c == nil {
		return -1
	}
	return c.index
}

func (c *Cell) setIndex(idx int) {
	if c == nil {
		return
	}
	c.index = idx
}

// joinCells renders "[ 1, 3, 8 ]".
func joinCells(cells []*Cell) string {
	var builder strings.Builder
	builder.WriteString("[ ")
	for i, c := range cells {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.FormatInt(int64(c.value), 10))
	}
	builder.WriteString(" ]")
	return builder.String()
}
