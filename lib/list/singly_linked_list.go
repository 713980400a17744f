package list

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/benz9527/dsviz/lib/id"
)

var _ BasicLinkedList = (*SinglyLinkedList)(nil)

// SinglyLinkedList keeps head and tail references plus a length counter.
// Not thread safe.
type SinglyLinkedList struct {
	head *NodeElement
	tail *NodeElement
	len  int64
	ids  id.Monotonic
}

func NewSinglyLinkedList() *SinglyLinkedList {
	return &SinglyLinkedList{}
}

func (l *SinglyLinkedList) Len() int64 {
	return l.len
}

func (l *SinglyLinkedList) IsEmpty() bool {
	return l.head == nil
}

func (l *SinglyLinkedList) Head() *NodeElement {
	return l.head
}

func (l *SinglyLinkedList) Tail() *NodeElement {
	return l.tail
}

func (l *SinglyLinkedList) newElement(v int32) *NodeElement {
	return &NodeElement{
		id:    l.ids.Next(),
		value: v,
	}
}

func (l *SinglyLinkedList) InsertAtHead(v int32) (res Trace) {
	e := l.newElement(v)
	e.next = l.head
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
	res.Path.Append(e)
	res.Node = e
	return res
}

func (l *SinglyLinkedList) InsertAtTail(v int32) (res Trace) {
	if l.head == nil {
		return l.InsertAtHead(v)
	}
	for aux := l.head; aux != nil; aux = aux.next {
		res.Path.Append(aux)
	}
	e := l.newElement(v)
	l.tail.next = e
	l.tail = e
	l.len++
	res.Path.Append(e)
	res.Node = e
	return res
}

// Remove detaches the first element holding v. The predecessor is relinked
// before the element is handed out with its next link cleared.
func (l *SinglyLinkedList) Remove(v int32) (res Trace, err error) {
	var prev *NodeElement
	for aux := l.head; aux != nil; prev, aux = aux, aux.next {
		res.Path.Append(aux)
		if aux.value != v {
			continue
		}

		if prev == nil {
			l.head = aux.next
		} else {
			prev.next = aux.next
		}
		if l.tail == aux {
			l.tail = prev
		}
		aux.next = nil
		l.len--
		res.Node = aux
		return res, nil
	}
	return res, ErrListValueNotFound
}

func (l *SinglyLinkedList) Search(v int32) (res Trace) {
	for aux := l.head; aux != nil; aux = aux.next {
		res.Path.Append(aux)
		if aux.value == v {
			res.Node = aux
			return res
		}
	}
	return res
}

func (l *SinglyLinkedList) Contains(v int32) bool {
	for aux := l.head; aux != nil; aux = aux.next {
		if aux.value == v {
			return true
		}
	}
	return false
}

func (l *SinglyLinkedList) Foreach(fn func(idx int64, e *NodeElement) bool) {
	if fn == nil {
		return
	}
	idx := int64(0)
	for aux := l.head; aux != nil; aux = aux.next {
		if !fn(idx, aux) {
			return
		}
		idx++
	}
}

func (l *SinglyLinkedList) AllNodes() []*NodeElement {
	if l.len <= 0 {
		return nil
	}
	nodes := make([]*NodeElement, 0, l.len)
	l.Foreach(func(_ int64, e *NodeElement) bool {
		nodes = append(nodes, e)
		return true
	})
	return nodes
}

func (l *SinglyLinkedList) Values() []int32 {
	values := make([]int32, 0, l.len)
	l.Foreach(func(_ int64, e *NodeElement) bool {
		values = append(values, e.value)
		return true
	})
	return values
}

// Clear unlinks every element. The id counter keeps going.
func (l *SinglyLinkedList) Clear() {
	for aux := l.head; aux != nil; {
		next := aux.next
		aux.next = nil
		aux = next
	}
	l.head, l.tail = nil, nil
	l.len = 0
}

// String renders the list as "[ 10 -> 20 ]", or "[ Empty ]".
func (l *SinglyLinkedList) String() string {
	if l.head == nil {
		return "[ Empty ]"
	}
	var builder strings.Builder
	builder.WriteString("[ ")
	for aux := l.head; aux != nil; aux = aux.next {
		builder.WriteString(strconv.FormatInt(int64(aux.value), 10))
		if aux.next != nil {
			builder.WriteString(" -> ")
		}
	}
	builder.WriteString(" ]")
	return builder.String()
}

var (
	ErrListLinkViolation = errors.New("[list] head and tail link violation")
	ErrListSizeViolation = errors.New("[list] size violation")
)

// ListViolationValidate checks that head, tail and len agree with the
// elements reachable from head.
func ListViolationValidate(l *SinglyLinkedList) error {
	var err error
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.len == 0) {
		err = multierr.Append(err, fmt.Errorf("%w: head nil %t, tail nil %t, len %d",
			ErrListLinkViolation, l.head == nil, l.tail == nil, l.len))
	}
	if l.tail != nil && l.tail.next != nil {
		err = multierr.Append(err, fmt.Errorf("%w: tail has a successor", ErrListLinkViolation))
	}
	var (
		reachable int64
		last      *NodeElement
	)
	for aux := l.head; aux != nil && reachable <= l.len; aux = aux.next {
		reachable++
		last = aux
	}
	if reachable != l.len {
		err = multierr.Append(err, fmt.Errorf("%w: reachable %d, len %d", ErrListSizeViolation, reachable, l.len))
	}
	if last != l.tail {
		err = multierr.Append(err, fmt.Errorf("%w: last reachable element is not tail", ErrListLinkViolation))
	}
	return err
}
