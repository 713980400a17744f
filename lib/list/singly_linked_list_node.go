package list

import (
	"github.com/benz9527/dsviz/lib/id"
)

type NodeElement struct {
	next  *NodeElement
	id    id.NodeID
	value int32
}

func (e *NodeElement) ID() id.NodeID {
	return e.id
}

func (e *NodeElement) Value() int32 {
	return e.value
}

func (e *NodeElement) HasNext() bool {
	return e != nil && e.next != nil
}

func (e *NodeElement) Next() *NodeElement {
	if e == nil {
		return nil
	}
	return e.next
}
